package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/shadowmaster/internal/content"
	"github.com/abhisek/shadowmaster/internal/profile"
	"github.com/abhisek/shadowmaster/internal/ui/components"
	"github.com/abhisek/shadowmaster/internal/ui/theme"
)

const titleFull = ` ▄▀▀ █ █ ▄▀▄ █▀▄ ▄▀▄ █   █
 ▀▄▄ █▀█ █▀█ █ █ █ █ █ █ █
 ▄▄▀ █ █ █ █ █▄▀ ▀▄▀ ▀▄▀▄▀`

const titleCompact = "S · H · A · D · O · W"

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	sub := lipgloss.NewStyle().Foreground(theme.Success).Render("● DAILY TRAINING ACTIVE")

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art) + "\n" + theme.Subtitle.Render("M A S T E R   H U B") + "\n" + sub)
}

// renderStatsBar renders streak, XP and level in a bordered box matching
// content width.
func renderStatsBar(stats profile.Stats, cw int, compact bool) string {
	streakStyle := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	xpStyle := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	levelStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	level := profile.Level(stats.XP)
	var line string
	if compact {
		line = fmt.Sprintf("%s %s %s",
			streakStyle.Render(fmt.Sprintf("ϟ%d", stats.Streak)),
			xpStyle.Render(fmt.Sprintf("⬡%d", stats.XP)),
			levelStyle.Render(fmt.Sprintf("L%d", level)),
		)
	} else {
		line = fmt.Sprintf("%s  %s  %s",
			streakStyle.Render(fmt.Sprintf("ϟ %d DAY STREAK", stats.Streak)),
			xpStyle.Render(fmt.Sprintf("⬡ %d XP", stats.XP)),
			levelStyle.Render(fmt.Sprintf("LVL %d %s", level, strings.ToUpper(profile.RankTitle(level)))),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(line)
}

// renderObjectiveCard shows the lesson Start Lesson will open.
func renderObjectiveCard(l content.Lesson, reward, cw int) string {
	caption := theme.Label.Render("CURRENT OBJECTIVE")
	title := theme.Title.Render(l.Title)
	module := theme.Subtitle.Render(l.Module)
	rewards := lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("+%d XP Reward", reward)) +
		"   " + lipgloss.NewStyle().Foreground(theme.Accent).Render("ϟ Streak Bonus")

	return components.Card(strings.Join([]string{caption, title, module, rewards}, "\n"), cw-2, true)
}

// renderRankMeter renders the eased progress toward the next rank.
func renderRankMeter(meter components.Meter, xp, cw int) string {
	level := profile.Level(xp)
	caption := lipgloss.NewStyle().Foreground(theme.TextDim).Render(
		fmt.Sprintf("%s → %s", profile.RankTitle(level), profile.NextRankTitle(level)))
	hint := theme.Hint.Render(fmt.Sprintf("%d XP to next level", profile.XPToNextLevel(xp)))
	return caption + "\n" + meter.View("Rank Progress", true, cw) + "\n" + hint
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderModuleMenu renders each quick module as a fixed-width button.
func renderModuleMenu(menu components.Menu, cw int) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.Primary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Primary).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	var buttons []string
	for i, item := range menu.Items {
		if i == menu.Selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+item.Label))
		} else {
			buttons = append(buttons, normalBtn.Render(item.Label))
		}
	}

	// two columns
	var rows []string
	for i := 0; i < len(buttons); i += 2 {
		if i+1 < len(buttons) {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, buttons[i], " ", buttons[i+1]))
		} else {
			rows = append(rows, buttons[i])
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(rows, "\n"))
}

// renderModuleMenuCompact renders quick modules as simple text lines (no
// borders) for small terminals where bordered buttons would overflow.
func renderModuleMenuCompact(menu components.Menu, cw int) string {
	var lines []string
	for i, item := range menu.Items {
		var line string
		if i == menu.Selected {
			line = lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Primary).
				Bold(true).
				Render(" ▸ " + item.Label + " ")
		} else {
			line = lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("   " + item.Label)
		}
		lines = append(lines, line)
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderAdvisorBanner renders a warning when no LLM provider is configured.
func renderAdvisorBanner(cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render("⚠ Oracle offline: set an LLM API key (see shadowmaster --help)")
}

// renderHubFrame wraps content in a double-border frame, centering
// vertically and horizontally within the given dimensions.
func renderHubFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Width(width - 2).   // account for border chars
		Height(height - 2). // account for border chars
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
