package chapter

import "charm.land/bubbles/v2/key"

type keyMap struct {
	Prev        key.Binding
	Next        key.Binding
	Complete    key.Binding
	Contents    key.Binding
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Option      key.Binding
	Submit      key.Binding
	Reset       key.Binding
	Copy        key.Binding
	PrevChapter key.Binding
	NextChapter key.Binding
}

var keys = keyMap{
	Prev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←", "Previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→", "Next"),
	),
	Complete: key.NewBinding(
		key.WithKeys("enter", "space"),
		key.WithHelp("Enter", "Mark as read"),
	),
	Contents: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "Contents"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
	),
	Option: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d"),
		key.WithHelp("a-d", "Choose"),
	),
	Submit: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "Submit"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "Retry"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "Copy code"),
	),
	PrevChapter: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "Prev chapter"),
	),
	NextChapter: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "Next chapter"),
	),
}

// optionIndex maps an option key to its zero-based position: 1-9 and a-d.
func optionIndex(k string) (int, bool) {
	if len(k) != 1 {
		return 0, false
	}
	switch c := k[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'd':
		return int(c - 'a'), true
	}
	return 0, false
}
