// Package main provides the CLI entrypoint for typeracer.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typeracer/internal/config"
	"github.com/verte-zerg/typeracer/internal/quote"
	"github.com/verte-zerg/typeracer/internal/store"
	"github.com/verte-zerg/typeracer/internal/tui"
)

const (
	defaultSource       = "auto"
	defaultTimeoutSec   = 10
	defaultRefreshMs    = 100
	defaultOfflineCache = true
	fallbackTermWidth   = 80
)

var (
	raceSource       string
	raceAPIURL       string
	raceTimeout      int
	raceRefreshMs    int
	raceOfflineCache bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typeracer",
		Short:         "Terminal typing race",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runRaceCmd,
	}

	addQuoteFlags(rootCmd)
	rootCmd.Flags().IntVar(&raceRefreshMs, "refresh-ms", defaultRefreshMs, "stats refresh interval in milliseconds")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newQuoteCmd())

	return rootCmd
}

func addQuoteFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&raceSource, "source", defaultSource, "passage source: auto, api, or builtin")
	cmd.Flags().StringVar(&raceAPIURL, "api-url", quote.DefaultAPIURL, "quote API endpoint")
	cmd.Flags().IntVar(&raceTimeout, "timeout", defaultTimeoutSec, "quote fetch timeout in seconds")
	cmd.Flags().BoolVar(&raceOfflineCache, "offline-cache", defaultOfflineCache, "cache fetched passages for offline play")
}

func runRaceCmd(cmd *cobra.Command, _ []string) error {
	if err := mergeFileConfig(cmd); err != nil {
		return err
	}
	if err := validateSource(raceSource); err != nil {
		return err
	}
	if raceRefreshMs <= 0 {
		return fmt.Errorf("--refresh-ms must be > 0")
	}

	provider, cleanup, err := buildProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	model := tui.NewModel(provider, time.Duration(raceRefreshMs)*time.Millisecond)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	fmt.Println("Thanks for playing TypeRacer!")
	return nil
}

func mergeFileConfig(cmd *cobra.Command) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &raceSource, fileCfg.Quotes.Source)
	applyStringConfig(cmd, "api-url", &raceAPIURL, fileCfg.Quotes.APIURL)
	applyIntConfig(cmd, "timeout", &raceTimeout, fileCfg.Quotes.Timeout)
	applyBoolConfig(cmd, "offline-cache", &raceOfflineCache, fileCfg.Quotes.OfflineCache)
	if cmd.Flags().Lookup("refresh-ms") != nil {
		applyIntConfig(cmd, "refresh-ms", &raceRefreshMs, fileCfg.Race.RefreshMs)
	}
	return nil
}

func validateSource(source string) error {
	switch source {
	case "auto", "api", "builtin":
		return nil
	default:
		return fmt.Errorf("unknown source %q (expected auto, api, or builtin)", source)
	}
}

// buildProvider assembles the passage source chain. The returned cleanup
// closes the cache store when one was opened.
func buildProvider() (quote.Provider, func(), error) {
	noop := func() {}
	timeout := time.Duration(raceTimeout) * time.Second
	switch raceSource {
	case "api":
		return quote.NewAPI(raceAPIURL, timeout), noop, nil
	case "builtin":
		return quote.NewBuiltin(), noop, nil
	}

	var cache quote.Cache
	cleanup := noop
	if raceOfflineCache {
		st, err := store.Open(config.DefaultCachePath())
		if err != nil {
			logErrf("failed to open passage cache: %v\n", err)
		} else {
			cache = st
			cleanup = func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close passage cache: %v\n", cerr)
				}
			}
		}
	}
	return quote.NewFallback(quote.NewAPI(raceAPIURL, timeout), cache, quote.NewBuiltin()), cleanup, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Fetch and print one passage",
		Args:  cobra.NoArgs,
		RunE:  runQuoteCmd,
	}
	addQuoteFlags(cmd)
	return cmd
}

func runQuoteCmd(cmd *cobra.Command, _ []string) error {
	if err := mergeFileConfig(cmd); err != nil {
		return err
	}
	if err := validateSource(raceSource); err != nil {
		return err
	}

	provider, cleanup, err := buildProvider()
	if err != nil {
		return err
	}
	defer cleanup()

	p, err := provider.Fetch(context.Background())
	if err != nil {
		return fmt.Errorf("failed to fetch passage: %w", err)
	}

	width := fallbackTermWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	for _, line := range wrapPlain(p.Content, width) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "— %s\n", p.Author); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func wrapPlain(text string, width int) []string {
	words := strings.Fields(text)
	var lines []string
	current := ""
	for _, word := range words {
		switch {
		case current == "":
			current = word
		case runewidth.StringWidth(current)+1+runewidth.StringWidth(word) > width:
			lines = append(lines, current)
			current = word
		default:
			current += " " + word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typeracer configuration
# Uncomment a value to enable it. CLI flags override config values.

[quotes]
# source = %q          # Passage source: auto, api, or builtin
# api-url = %q
# timeout = %d             # Fetch timeout in seconds
# offline-cache = %t    # Cache fetched passages for offline play

[race]
# refresh-ms = %d         # Stats refresh interval in milliseconds
`,
		defaultSource,
		quote.DefaultAPIURL,
		defaultTimeoutSec,
		defaultOfflineCache,
		defaultRefreshMs,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
