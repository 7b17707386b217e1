package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/termpong/internal/game"
	"github.com/vovakirdan/termpong/internal/platform/tui"
	"github.com/vovakirdan/termpong/internal/storage"
)

var flagPlain bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show round history",
	Long: `Display the recorded rounds and aggregate statistics.

By default an interactive table opens; tab switches between the most
recent rounds and the best rounds. Use --plain for plain text output.

Examples:
  termpong scores
  termpong scores --plain`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print plain text instead of the interactive table")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagPlain {
		printScores(store)
		return
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	model := tui.NewScoreboardModel(store, width, height)
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error showing scores: %v\n", err)
		os.Exit(1)
	}
}

func printScores(store *storage.Store) {
	rounds, err := store.RecentRounds(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Rounds")
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Println("Play 'termpong play' to record the first one!")
		return
	}

	fmt.Printf("  %-17s  %-7s  %-6s  %-6s  %s\n", "Date", "Result", "Level", "Hits", "Duration")
	fmt.Printf("  %-17s  %-7s  %-6s  %-6s  %s\n", "----", "------", "-----", "----", "--------")

	for _, r := range rounds {
		verdict := "lost"
		if r.Winner == game.WinnerPlayer {
			verdict = "won"
		}
		fmt.Printf("  %-17s  %-7s  %-6d  %-6d  %ds\n",
			r.CreatedAt.Format("2006-01-02 15:04"), verdict, r.LevelReached+1, r.HitsTotal, r.DurationSecs)
	}

	if stats, err := store.GetStats(); err == nil && stats.RoundsCount > 0 {
		fmt.Println()
		fmt.Printf("Total: %d rounds, %d won, best level %d\n",
			stats.RoundsCount, stats.PlayerWins, stats.BestLevel+1)
	}
}
