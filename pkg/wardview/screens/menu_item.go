package screens

import "github.com/wardview/wardview/pkg/wardview/navigation"

// MenuItem represents a single row of a screen.
type MenuItem struct {
	Text      string            // Display text; when empty the shell shows the title of Target
	Target    navigation.Handle // View opened when the row is chosen, empty for plain rows
	Parameter any               // Passed to Target's Initialize; nil opens Target without one
}

// Opens reports whether choosing the row navigates somewhere.
func (m MenuItem) Opens() bool {
	return m.Target != ""
}

// list is the row and cursor state shared by every screen. It lives on the
// view-model, so the cursor is still in place after navigating back.
type list struct {
	heading  string
	items    []MenuItem
	selected int
}

// Heading returns the line shown under the breadcrumb, may be empty.
func (l *list) Heading() string {
	return l.heading
}

// Items returns the rows of the screen.
func (l *list) Items() []MenuItem {
	return l.items
}

// Selected returns the index of the row under the cursor.
func (l *list) Selected() int {
	return l.selected
}

// Move shifts the cursor by delta rows, clamped to the list.
func (l *list) Move(delta int) {
	if len(l.items) == 0 {
		l.selected = 0
		return
	}
	l.selected = min(max(l.selected+delta, 0), len(l.items)-1)
}

// Current returns the row under the cursor.
func (l *list) Current() (MenuItem, bool) {
	if l.selected < 0 || l.selected >= len(l.items) {
		return MenuItem{}, false
	}
	return l.items[l.selected], true
}

func (l *list) setItems(items []MenuItem) {
	l.items = items
	l.selected = 0
}
