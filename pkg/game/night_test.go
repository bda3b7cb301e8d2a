package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NightIntent_Casualty(t *testing.T) {
	tests := []struct {
		name     string
		intent   NightIntent
		expected PlayerID
	}{
		{"attack without protection", NightIntent{Victim: 2, Saved: NoPlayer, SeerPeek: NoPlayer}, 2},
		{"protected victim survives", NightIntent{Victim: 2, Saved: 2, SeerPeek: 2}, NoPlayer},
		{"protection of somebody else", NightIntent{Victim: 2, Saved: 1, SeerPeek: NoPlayer}, 2},
		{"no attack", NightIntent{Victim: NoPlayer, Saved: 1, SeerPeek: 0}, NoPlayer},
		{"nothing happened", emptyIntent(), NoPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.intent.Casualty())
		})
	}
}

func Test_NightIntent_reset(t *testing.T) {
	in := NightIntent{Victim: 1, Saved: 2, SeerPeek: 3}
	in.reset()
	assert.Equal(t, emptyIntent(), in)
}
