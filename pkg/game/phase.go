package game

// Phase represents the part of the game which is going on
type Phase int

const (
	PhaseSetup Phase = iota
	PhaseReveal
	PhaseNight
	PhaseDay
	PhaseGameOver
)

var phaseToName = [...]string{
	PhaseSetup:    "setup",
	PhaseReveal:   "reveal",
	PhaseNight:    "night",
	PhaseDay:      "day",
	PhaseGameOver: "game over",
}

func (p Phase) String() string {
	if p < 0 || int(p) >= len(phaseToName) {
		return "unknown"
	}
	return phaseToName[p]
}
