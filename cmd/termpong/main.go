// termpong is a terminal Pong game played against the computer.
//
// Usage:
//
//	termpong play            - Play a round in the current terminal
//	termpong scores          - Show round history and statistics
//	termpong serve           - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>     - Set database path (default: ~/.termpong/rounds.db)
//	--debug         - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagDBPath string
	flagDebug  bool
)

// Load the optional .env before flag defaults are computed.
func init() {
	_ = godotenv.Load()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termpong",
	Short: "Pong in your terminal",
	Long: `termpong is a terminal Pong game: you against the computer paddle.
Return the ball to clear levels; every cleared level speeds the ball up.

Available commands:
  play     - Play a round in the current terminal
  scores   - View round history and statistics
  serve    - Start SSH server for remote play

Examples:
  termpong play
  termpong play --difficulty hard
  termpong scores
  termpong serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaultDBPath(), "Path to rounds database")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// defaultDBPath honors TERMPONG_DB (settable via .env) before the built-in
// location.
func defaultDBPath() string {
	if p := os.Getenv("TERMPONG_DB"); p != "" {
		return p
	}
	return "~/.termpong/rounds.db"
}

// newLogger builds the CLI logger, honoring --debug.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
