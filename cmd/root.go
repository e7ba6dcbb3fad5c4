package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/ailearn/internal/config"
	"github.com/abhisek/ailearn/internal/logging"
	"github.com/abhisek/ailearn/internal/store"
)

var (
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "ailearn",
	Short: "Adaptive micro-learning tutor",
	Long: `AI Learn teaches short lessons adapted to how you learn and how you feel
today. Run without arguments to open the terminal app.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides AILEARN_DB env var)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides AILEARN_CONFIG env var)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(lessonCmd)
	rootCmd.AddCommand(evaluateCmd)
	rootCmd.AddCommand(feedbackCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup loads the configuration, applies flag overrides and builds the
// logger. The TUI logs to a file so output does not tear the screen.
func setup(cmd *cobra.Command) error {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
		path = p
	}
	c, err := config.Load(path)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd, c)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	c.Database.Path = dbPath
	if lvl, _ := cmd.Flags().GetString("log-level"); lvl != "" {
		c.Logging.Level = lvl
	}
	cfg = c

	l, err := logging.New(logOptions(cmd, c))
	if err != nil {
		return err
	}
	logger = l
	return nil
}

// logOptions sends the TUI's output to a file next to the database unless
// the config names one. Subcommands log to stderr.
func logOptions(cmd *cobra.Command, c *config.Config) logging.Options {
	opts := logging.Options{Level: c.Logging.Level, Development: c.Logging.Development, File: c.Logging.File}
	if !cmd.HasParent() && opts.File == "" {
		opts.File = logging.FileBeside(c.Database.Path)
	}
	return opts
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the config file or AILEARN_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, c *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if c.Database.Path != "" {
		return c.Database.Path, store.EnsureDir(c.Database.Path)
	}
	return store.DefaultDBPath()
}
