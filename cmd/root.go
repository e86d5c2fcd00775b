package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/abhisek/grimoire/internal/config"
	"github.com/abhisek/grimoire/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "grimoire",
	Short: "A dark-fantasy skill tome for the terminal",
	Long: "Grimoire: pick a path, let the chronicler write your tutorial, " +
		"complete its quests, and pay tribute to consult the Curator.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to subcommands.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(versionCmd)
}

func addGlobalFlags(fs *pflag.FlagSet) {
	fs.String("db", "", "Path to the LLM request log database (overrides GRIMOIRE_DB)")
	fs.String("config", "", "Path to config.yaml (default $XDG_CONFIG_HOME/grimoire/config.yaml)")
	fs.BoolP("verbose", "v", false, "Log at debug level")
	fs.String("provider", "", "LLM provider: gemini, anthropic, openai, openrouter, mock")
	fs.String("model", "", "Model override for the selected provider")
}

// loadConfig reads the config file and environment, then applies flags,
// which win over both.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}

	if p, _ := cmd.Flags().GetString("provider"); p != "" {
		cfg.Provider = p
	}
	if m, _ := cmd.Flags().GetString("model"); m != "" {
		cfg.Model = m
	}
	if v, _ := cmd.Flags().GetBool("verbose"); v {
		cfg.Log.Level = "debug"
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	return cfg, nil
}

// resolveDBPath returns the database path using --db, the config file or
// GRIMOIRE_DB, then the default XDG path.
func resolveDBPath(cfg config.Config) (string, error) {
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// openStore loads settings and opens the request log.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, err := resolveDBPath(cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}
