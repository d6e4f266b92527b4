package tui

import "github.com/vovakirdan/tui-snake/internal/core"

var introControls = []string{
	"Arrow keys / WASD   move",
	"P                   pause",
	"Q                   quit",
}

const (
	introTitle  = "S N A K E"
	introHint   = "Eat food, avoid walls and your tail"
	introPrompt = "Press any key to start"
)

// renderIntro draws the start screen shown before the first tick.
func renderIntro(s *core.Screen) {
	s.Clear()

	// title, blank, hint, blank, controls, blank, prompt
	lines := 6 + len(introControls)
	top := core.Max(0, (s.Height()-lines)/2)

	s.DrawTextCentered(top, introTitle, core.ColorBrightGreen)
	s.DrawTextCentered(top+2, introHint, core.ColorGray)

	x := core.Max(0, (s.Width()-len(introControls[1]))/2)
	for i, line := range introControls {
		s.DrawText(x, top+4+i, line)
	}

	s.DrawTextCentered(top+5+len(introControls), introPrompt, core.ColorYellow)
}
