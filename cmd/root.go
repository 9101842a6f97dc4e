package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pable/go-meta-metrics/internal/storage"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "metametrics",
	Short: "Tournament matchup metrics tool",
	Long:  "Fetch melee.gg tournament pairings and compute archetype matchup statistics.",
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	defaultDB := filepath.Join(mustUserHome(), ".metametrics", "metrics.db")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDB, "path to SQLite database")

	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(pairingsCmd)
	rootCmd.AddCommand(resultsCmd)
	rootCmd.AddCommand(matchupsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(matrixCmd)
	rootCmd.AddCommand(metaCmd)
	rootCmd.AddCommand(cardsCmd)
	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(archetypesCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(dropCmd)
}

func mustUserHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// openStore opens the database at --db, creating its directory when needed.
func openStore() (*storage.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := storage.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage: %w", err)
	}
	return db, nil
}

// loadCookie returns the melee.gg session cookie from the MELEE_COOKIE
// environment variable or ~/.metametrics/cookie file.
func loadCookie() (string, error) {
	if c := strings.TrimSpace(os.Getenv("MELEE_COOKIE")); c != "" {
		return c, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(filepath.Join(home, ".metametrics", "cookie"))
	if err != nil {
		return "", fmt.Errorf("session cookie not found: set MELEE_COOKIE or create ~/.metametrics/cookie")
	}
	return strings.TrimSpace(string(data)), nil
}
