package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler dispatches key events for the App. A handful of keys are
// intercepted globally; everything else flows into the input buffer so
// typing works the same in every display action.
type KeyHandler struct {
	app *App
}

func NewKeyHandler(app *App) *KeyHandler {
	return &KeyHandler{app: app}
}

func (kh *KeyHandler) HandleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+c":
		// The only normal way out.
		return kh.app, tea.Quit

	case "enter":
		kh.app.handleSubmit()
		return kh.app, nil

	case "up":
		kh.app.selection.Prev(kh.app.episodeCount())
		return kh.app, nil

	case "down":
		kh.app.selection.Next(kh.app.episodeCount())
		return kh.app, nil

	default:
		return kh.delegateToInput(msg)
	}
}

// delegateToInput passes the key to the input buffer, which owns
// character append and backspace behavior.
func (kh *KeyHandler) delegateToInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	kh.app.textInput, cmd = kh.app.textInput.Update(msg)
	return kh.app, cmd
}
