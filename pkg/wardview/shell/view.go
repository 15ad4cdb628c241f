package shell

import (
	"strings"

	"github.com/wardview/wardview/pkg/wardview/constants"
)

func (m *Model) View() string {
	var lines []string

	lines = append(lines, m.breadcrumb())

	if s, ok := m.screen(); ok {
		if heading := s.Heading(); heading != "" {
			lines = append(lines, heading)
		}
		lines = append(lines, "")

		items := s.Items()
		if len(items) == 0 {
			lines = append(lines, m.styles.Hint.Render(m.translator.Message("EmptyList", nil)))
		}
		for i, item := range items {
			text := item.Text
			if text == "" {
				text = m.translator.Title(string(item.Target))
			}
			if i == s.Selected() {
				lines = append(lines, m.styles.Selected.Render(constants.Cursor+" "+text))
			} else {
				lines = append(lines, m.styles.Row.Render("  "+text))
			}
		}
	}

	lines = append(lines, "")
	if m.banner != "" {
		lines = append(lines, m.styles.Error.Render(constants.Warning+" "+m.banner))
	}
	lines = append(lines, m.footer())

	return m.styles.Screen.Render(strings.Join(lines, "\n"))
}

// breadcrumb renders the titles of the history followed by the active view.
func (m *Model) breadcrumb() string {
	var parts []string
	for _, h := range m.nav.HistoryHandles() {
		parts = append(parts, m.styles.Breadcrumb.Render(m.translator.Title(string(h))))
	}
	if !m.nav.IsEmpty() {
		parts = append(parts, m.styles.Active.Render(m.translator.Title(string(m.nav.ActiveHandle()))))
	}
	return strings.Join(parts, m.styles.Breadcrumb.Render(constants.BreadcrumbSeparator))
}

func (m *Model) footer() string {
	hints := []string{
		constants.UpDown + " " + m.translator.Message("HelpMove", nil),
		constants.Enter + " " + m.translator.Message("HelpOpen", nil),
		constants.Back + " " + m.translator.Message("HelpBack", nil),
		"g " + m.translator.Message("HelpHome", nil),
		"q " + m.translator.Message("HelpQuit", nil),
	}
	return m.styles.Hint.Render(strings.Join(hints, "  "))
}
