package game

// Evaluate returns the side which has won with the roster given, zero if
// the game goes on. Werewolves win as soon as they are at parity with the rest
func Evaluate(players []Player) Side {
	if len(players) == 0 {
		panic("game: win check on an empty roster")
	}

	var wolvesAlive, othersAlive int
	for _, player := range players {
		switch {
		case !player.Alive:
		case player.Role == Werewolf:
			wolvesAlive++
		default:
			othersAlive++
		}
	}

	switch {
	case wolvesAlive == 0:
		return VillagerSide
	case wolvesAlive >= othersAlive:
		return WerewolfSide
	default:
		return 0
	}
}
