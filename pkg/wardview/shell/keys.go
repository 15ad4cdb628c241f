package shell

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/wardview/wardview/pkg/wardview/constants"
)

// actionFor maps a key press to a shell action.
func actionFor(msg tea.KeyMsg) constants.Action {
	switch msg.String() {
	case "up", "k":
		return constants.ActionUp
	case "down", "j":
		return constants.ActionDown
	case "enter", "right", "l":
		return constants.ActionOpen
	case "esc", "backspace", "left", "h":
		return constants.ActionBack
	case "home", "g":
		return constants.ActionHome
	case "q", "ctrl+c":
		return constants.ActionQuit
	default:
		return constants.ActionNone
	}
}
