package lesson

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	sess "github.com/abhisek/shadowmaster/internal/lesson"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

func (s *LessonScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	l := s.session.Lesson()

	header := theme.Label.Render(strings.ToUpper(l.Module)) + "\n" +
		theme.Title.Render(l.Title) + "\n" +
		s.progress.View(fmt.Sprintf("Step %d/%d", s.stepNumber(), s.session.StepCount()), false, cw)

	var body string
	if s.done {
		body = s.renderComplete(cw)
	} else {
		body = s.renderStep(cw)
	}

	return components.Center(header+"\n\n"+body, width, height)
}

func (s *LessonScreen) stepNumber() int {
	if s.session.Finished() {
		return s.session.StepCount()
	}
	return s.session.Index() + 1
}

func (s *LessonScreen) renderStep(cw int) string {
	step := s.session.Step()

	var sections []string
	if step.IsQuestion() {
		sections = append(sections, components.Card(theme.Body.Width(components.CardInner(cw)).Render(step.Prompt), cw, false))
		revealed := s.session.Status() != sess.StatusActive
		sections = append(sections, s.choices.View(s.session.Selected(), revealed, cw))
		if fb := s.renderFeedback(cw); fb != "" {
			sections = append(sections, fb)
		}
	} else {
		if v := renderVisual(step.Visual, cw); v != "" {
			sections = append(sections, v)
		}
		sections = append(sections, components.Card(theme.Body.Width(components.CardInner(cw)).Render(step.Content), cw, false))
	}

	sections = append(sections, s.renderButtons())
	return strings.Join(sections, "\n")
}

// renderFeedback shows the judged option's feedback.
func (s *LessonScreen) renderFeedback(cw int) string {
	opt, ok := s.session.Feedback()
	if !ok {
		return ""
	}
	title := theme.Correct.Render("✓ Correct Analysis")
	border := theme.Success
	if !opt.Correct {
		title = theme.Incorrect.Render("✗ Mission Critical Error")
		border = theme.Error
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 2).
		Width(cw).
		Render(title + "\n" + theme.Body.Render(opt.Feedback))
}

func (s *LessonScreen) renderButtons() string {
	var buttons []components.Button
	switch label := s.primaryLabel(); label {
	case "Confirm":
		b := components.NewButton(label, "enter", theme.ButtonPrimary)
		b.Disabled = !s.session.Can(sess.ActionConfirm)
		buttons = append(buttons, b)
	case "Try Again":
		buttons = append(buttons, components.NewButton(label, "enter", theme.ButtonDanger))
	case "Complete Module":
		buttons = append(buttons, components.NewButton(label, "enter", theme.ButtonSuccess))
	case "":
	default:
		buttons = append(buttons, components.NewButton(label, "enter", theme.ButtonPrimary))
	}
	buttons = append(buttons, components.NewButton("Exit", "esc", theme.ButtonSecondary))
	return components.ButtonRow(buttons...)
}

func (s *LessonScreen) renderComplete(cw int) string {
	l := s.session.Lesson()
	msg := theme.Correct.Render("MODULE COMPLETE") + "\n" +
		theme.Body.Render(l.Title+" cleared.") + "\n" +
		lipgloss.NewStyle().Foreground(theme.Primary).Render("Returning to HQ...")
	return components.Card(msg, cw, true)
}

// renderVisual draws the illustration for an info step.
func renderVisual(v content.Visual, cw int) string {
	var art string
	switch v {
	case content.VisualCameraDiagram:
		art = cameraDiagram()
	case content.VisualPhoneSignal:
		art = phoneSignal()
	default:
		return ""
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw).
		Align(lipgloss.Center).
		Render(art)
}

func cameraDiagram() string {
	cam := lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	zone := lipgloss.NewStyle().Foreground(theme.Error)
	blind := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	lines := []string{
		cam.Render("◉"),
		zone.Render("╱ ") + blind.Render("│") + zone.Render(" ╲"),
		zone.Render("╱   ") + blind.Render("│") + zone.Render("   ╲"),
		zone.Render("╱     ") + blind.Render("▼") + zone.Render("     ╲"),
		zone.Render("Active Zone") + "  " + blind.Render("Blind Spot"),
	}
	return strings.Join(lines, "\n")
}

func phoneSignal() string {
	bars := lipgloss.NewStyle().Foreground(theme.Primary).Render("▂▄▆█")
	cut := lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render("✕")
	return "📱 " + bars + "  " + cut + "\n" + theme.Hint.Render("signal leaks location")
}
