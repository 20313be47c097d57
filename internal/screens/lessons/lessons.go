package lessons

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/nav"
	"github.com/abhisek/shadowmaster/internal/screen"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

// UnlockLevel is the level at which further modules are promised.
const UnlockLevel = 4

// ListScreen lists the training modules in catalog order.
type ListScreen struct {
	menu    components.Menu
	lessons []content.Lesson
}

var _ screen.Screen = (*ListScreen)(nil)
var _ screen.KeyHintProvider = (*ListScreen)(nil)

func New(catalog *content.Catalog) *ListScreen {
	lessons := catalog.Lessons()
	items := make([]components.MenuItem, 0, len(lessons))
	for _, l := range lessons {
		target := nav.LessonOverlay{LessonID: l.ID}
		items = append(items, components.MenuItem{
			Label:  l.Title,
			Detail: l.Module,
			Action: func() tea.Cmd { return screen.Navigate(target) },
		})
	}
	return &ListScreen{menu: components.NewMenu(items), lessons: lessons}
}

func (s *ListScreen) Init() tea.Cmd {
	return nil
}

func (s *ListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "esc" {
		return s, screen.Navigate(nav.Home())
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ListScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var rows []string
	for i, l := range s.lessons {
		rows = append(rows, components.Card(renderRow(l, i == s.menu.Selected), cw, i == s.menu.Selected))
	}

	locked := lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.TextMuted).
		Render(fmt.Sprintf("🔒 More modules unlocking at Level %d", UnlockLevel))

	body := theme.Title.Render("Training Modules") + "\n\n" +
		strings.Join(rows, "\n") + "\n\n" + locked

	return components.Center(body, width, height)
}

func renderRow(l content.Lesson, selected bool) string {
	module := theme.Label.Render(strings.ToUpper(l.Module))
	title := theme.Title.Render(l.Title)
	action := theme.Hint.Render("Start")
	if selected {
		action = theme.Selected.Render("▸ Start")
	}
	return module + "\n" + title + "   " + action
}

func (s *ListScreen) Title() string {
	return "Training Modules"
}

func (s *ListScreen) KeyHints() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑↓", "choose")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "home")),
	}
}
