package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/quantum-defender/internal/core"
)

// KeyMap defines the in-game key bindings.
// It centralizes bindings and makes them testable.
type KeyMap struct {
	Start      key.Binding
	Confirm    key.Binding
	Pause      key.Binding
	Restart    key.Binding
	SlowTime   key.Binding
	Shield     key.Binding
	Blast      key.Binding
	Help       key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
	Back       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default in-game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "start"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/confirm"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		SlowTime: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "slow time"),
		),
		Shield: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "shield"),
		),
		Blast: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "blast"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "help"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "volume up"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("-", "_"),
			key.WithHelp("-", "volume down"),
		),
		Back: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "back"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Pause, k.SlowTime, k.Shield, k.Blast, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Confirm, k.Pause, k.Restart},
		{k.SlowTime, k.Shield, k.Blast},
		{k.Help, k.VolumeUp, k.VolumeDown},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (k KeyMap) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Start):
		return core.ActionStart, false
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	case key.Matches(msg, k.Restart):
		return core.ActionRestart, false
	case key.Matches(msg, k.SlowTime):
		return core.ActionSlowTime, false
	case key.Matches(msg, k.Shield):
		return core.ActionShield, false
	case key.Matches(msg, k.Blast):
		return core.ActionBlast, false
	case key.Matches(msg, k.Help):
		return core.ActionHelp, false
	case key.Matches(msg, k.VolumeUp):
		return core.ActionVolumeUp, false
	case key.Matches(msg, k.VolumeDown):
		return core.ActionVolumeDown, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := k.MapKey(msg)
	if action != core.ActionNone && !isQuit {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame appends left-button presses, drags and releases to the frame.
// Other buttons and wheel events are ignored.
func MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			frame.AddPointer(core.PointerDown, msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		if msg.Button == tea.MouseButtonLeft {
			frame.AddPointer(core.PointerMove, msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		frame.AddPointer(core.PointerUp, msg.X, msg.Y)
	}
}

// MenuAction represents a launcher action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a launcher action.
func MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}
