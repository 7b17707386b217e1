package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/termpong/internal/game"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2")).
			Bold(true)

	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("1")).
			Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3")).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.RoundedBorder())
)

const pongTitle = `
 ██████╗  ██████╗ ███╗   ██╗ ██████╗
 ██╔══██╗██╔═══██╗████╗  ██║██╔════╝
 ██████╔╝██║   ██║██╔██╗ ██║██║  ███╗
 ██╔═══╝ ██║   ██║██║╚██╗██║██║   ██║
 ██║     ╚██████╔╝██║ ╚████║╚██████╔╝
 ╚═╝      ╚═════╝ ╚═╝  ╚═══╝ ╚═════╝`

// introView renders the start screen.
func introView(width, height int) string {
	content := strings.Join([]string{
		titleStyle.Render(pongTitle),
		"",
		hintStyle.Render("move with w/s, arrows or the mouse"),
		"",
		hintStyle.Render("press space to start, q to quit"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// gameOverView renders the intermission screen after a round.
func gameOverView(width, height int, winner game.Winner, level, hits int) string {
	var verdict string
	if winner == game.WinnerPlayer {
		verdict = winStyle.Render("YOU WIN")
	} else {
		verdict = loseStyle.Render("GAME OVER")
	}

	content := strings.Join([]string{
		verdict,
		"",
		hintStyle.Render(fmt.Sprintf("reached level %d with %d hits", level+1, hits)),
		"",
		hintStyle.Render("press space to play again, q to quit"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// levelBanner renders the pause overlay shown between levels. The round
// stays frozen until the banner is acknowledged.
func levelBanner(width, height, level int) string {
	content := strings.Join([]string{
		bannerStyle.Render(fmt.Sprintf("level %d cleared", level)),
		"",
		hintStyle.Render("press space to continue"),
	}, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
