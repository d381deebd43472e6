// claude-sessions discovers active and saved Claude Code sessions on this
// machine and resumes them by handing control to the claude CLI.
package main

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kyupid/claude-sessions/internal/claude"
	"github.com/kyupid/claude-sessions/internal/cli"
	"github.com/kyupid/claude-sessions/internal/config"
	"github.com/kyupid/claude-sessions/internal/i18n"
	"github.com/kyupid/claude-sessions/internal/sessions"
	"github.com/kyupid/claude-sessions/internal/tui"
	"github.com/kyupid/claude-sessions/internal/tuilog"
	"github.com/kyupid/claude-sessions/internal/version"
	"github.com/kyupid/claude-sessions/internal/watch"
)

// Global flags
var (
	dirFlag string
	logPath string
)

// pending is the handoff staged by a selection. Exec replaces this process,
// so it runs only after the command tree has fully unwound; see main.
var pending *sessions.Handoff

var rootCmd = &cobra.Command{
	Use:   "claude-sessions",
	Short: "Discover, monitor, and resume Claude Code sessions",
	Long: `claude-sessions finds the Claude Code sessions on this machine, both the
processes currently running and the transcripts saved under ~/.claude/projects,
and resumes a saved one by replacing itself with 'claude --resume'.

Running without a subcommand opens the session browser.

Examples:
  claude-sessions                 # Browse saved sessions and resume one
  claude-sessions monitor         # Watch live claude processes
  claude-sessions list            # Same as the bare command; 'ls' works too
  claude-sessions attach 2        # Resume the second most recent session
  claude-sessions attach 27ac80   # Resume by session-id prefix`,
	SilenceUsage: true,
	RunE:         runList,
}

var monitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Watch live claude processes, refreshed continuously",
	RunE:  runMonitor,
}

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Browse saved sessions and resume one",
	Long: `Browse saved sessions most-recent-first and resume the selected one.

With an interactive terminal this opens a full-screen browser that refreshes
as sessions come and go. Otherwise it prints a numbered table and, when stdin
is a terminal, prompts for a session number.`,
	RunE: runList,
}

var attachCmd = &cobra.Command{
	Use:     "attach [session]",
	Aliases: []string{"a"},
	Short:   "Resume a session by number, id prefix, or interactively",
	Long: `Resume a saved session. A numeric argument is a 1-based position in the
most-recent-first list ('attach 1' resumes the latest session); anything else
matches a session-id prefix. Without an argument the session browser opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAttach,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String("claude-sessions"))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dirFlag, "dir", "", "session storage root (default ~/.claude/projects)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "write debug logs to this file")
	rootCmd.AddCommand(monitorCmd, listCmd, attachCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}

	// Process replacement is the terminal action of the whole program: no
	// catalog state survives it, so it runs after everything else has
	// unwound. A failed chdir is reported and ignored; resuming from the
	// current directory still works.
	if pending == nil {
		return
	}
	tuilog.Log.Info("handing off", "command", pending.Command, "dir", pending.Dir)
	tuilog.Log.Close()
	if err := pending.PrepareDir(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot enter %s (%v), resuming from the current directory\n", pending.Dir, err)
	}
	if err := pending.Exec(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// setup initializes logging, configuration, and locale, and resolves the
// storage root. Flag > config > default.
func setup() (config.Config, string, error) {
	if err := tuilog.Init(tuilog.ResolvePath(logPath)); err != nil {
		return config.Config{}, "", fmt.Errorf("init logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		tuilog.Log.Warn("config load failed, using defaults", "error", err)
		cfg = config.Default()
	}
	i18n.Init(i18n.ResolveLocale(cfg.Language))

	root := dirFlag
	if root == "" {
		root = cfg.ProjectsDir
	}
	if root == "" {
		root, err = claude.DefaultProjectsDir()
		if err != nil {
			return cfg, "", fmt.Errorf("resolve storage root: %w", err)
		}
	}
	return cfg, root, nil
}

func runMonitor(cmd *cobra.Command, args []string) error {
	cfg, _, err := setup()
	if err != nil {
		return err
	}
	if cli.DetectViewMode() != cli.InteractiveView {
		return fmt.Errorf("monitor requires an interactive terminal")
	}

	scan := func() ([]sessions.LiveSession, error) {
		return sessions.Scan(cfg.ProcessName)
	}
	return tui.RunMonitor(scan, cfg.RefreshDuration(), programOptions()...)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, root, err := setup()
	if err != nil {
		return err
	}
	refresher := &sessions.Refresher{Root: root, ProcessName: cfg.ProcessName}

	if cli.DetectViewMode() == cli.InteractiveView {
		selected, err := browseSessions(refresher, cfg, root)
		if err != nil || selected == nil {
			return err
		}
		return stageHandoff(cfg, selected.Session)
	}

	snap := refresher.Refresh()
	cli.PrintSessionList(os.Stdout, snap.Saved)
	if len(snap.Saved) == 0 || !cli.CanPrompt() {
		return nil
	}
	choice, err := cli.PromptSelect(os.Stdin, os.Stderr, len(snap.Saved))
	if err != nil || choice == 0 {
		return err
	}
	return stageHandoff(cfg, snap.Saved[choice-1].Session)
}

func runAttach(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return runList(cmd, args)
	}

	cfg, root, err := setup()
	if err != nil {
		return err
	}
	refresher := &sessions.Refresher{Root: root, ProcessName: cfg.ProcessName}

	snap := refresher.Refresh()
	entry, err := sessions.Resolve(snap.Saved, args[0])
	if err != nil {
		return err
	}
	return stageHandoff(cfg, entry.Session)
}

// browseSessions runs the interactive browser with a best-effort storage
// watcher; when watching fails, the browser degrades to timer-only refresh.
func browseSessions(refresher *sessions.Refresher, cfg config.Config, root string) (*sessions.SavedEntry, error) {
	var events <-chan struct{}
	if w, err := watch.New(root); err == nil {
		defer w.Close()
		events = w.Events()
	} else {
		tuilog.Log.Warn("storage watch unavailable, timer-only refresh", "error", err)
	}
	return tui.RunBrowser(refresher.Refresh, events, cfg.RefreshDuration(), programOptions()...)
}

// stageHandoff builds the resume invocation and leaves it for main to exec.
func stageHandoff(cfg config.Config, session claude.Session) error {
	h, err := sessions.NewHandoff(cfg.ProcessName, session)
	if err != nil {
		return err
	}
	pending = h
	return nil
}

// programOptions probes the terminal size across stdout, stdin, and stderr,
// whichever is still a terminal.
func programOptions() []tea.ProgramOption {
	var opts []tea.ProgramOption
	for _, fd := range []int{int(os.Stdout.Fd()), int(os.Stdin.Fd()), int(os.Stderr.Fd())} {
		if term.IsTerminal(fd) {
			w, h, err := term.GetSize(fd)
			if err == nil && w > 0 && h > 0 {
				opts = append(opts, tea.WithWindowSize(w, h))
				break
			}
		}
	}
	return opts
}
