package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/shadowmaster/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "shadowmaster",
	Short: "Infiltration training hub for the terminal",
	Long: `ShadowMaster Hub: guided stealth lessons, simulated missions and an AI mentor.

The mentor and contract generator need an LLM provider. Set one of
GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY or OPENROUTER_API_KEY,
or choose explicitly with SHADOW_LLM_PROVIDER. Without a key the hub still
runs and the advisory features answer with offline placeholders.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "SQLite file for the advisory request log (overrides SHADOW_DB; in-memory when empty)")
	pf.String("log-file", "", "Write JSON logs to this file (overrides SHADOW_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn or error (overrides SHADOW_LOG_LEVEL)")
	pf.String("catalog", "", "Lesson catalog YAML file (overrides SHADOW_CATALOG)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(advisorCmd)
}

// loadConfig layers command-line flags over the environment and validates
// the result.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if v, _ := flags.GetString("db"); v != "" {
		cfg.DBPath = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = v
	}
	if v, _ := flags.GetString("catalog"); v != "" {
		cfg.CatalogPath = v
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
