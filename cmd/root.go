package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/adilsezer/lithuaningo-sub000/internal/app"
	"github.com/adilsezer/lithuaningo-sub000/internal/config"
	"github.com/adilsezer/lithuaningo-sub000/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "lithuaningo",
	Short: "Daily Lithuanian vocabulary quiz",
	Long: "Lithuaningo builds a daily quiz from the Lithuanian sentences you have learned,\n" +
		"then loops over the questions you missed until you get them all right.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine.
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("load .env: %w", err)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return playCmd.RunE(cmd, args)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to YAML config (overrides LITHUANINGO_CONFIG)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LITHUANINGO_DB)")
	rootCmd.PersistentFlags().StringP("user", "u", defaultUser(), "Learner ID (overrides LITHUANINGO_USER)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(learnCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

func defaultUser() string {
	if u := os.Getenv("LITHUANINGO_USER"); u != "" {
		return u
	}
	return "local"
}

func userFlag(cmd *cobra.Command) string {
	u, _ := cmd.Flags().GetString("user")
	return u
}

// loadConfig reads the config named by --config and installs the logger.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	app.NewLogger(cfg.Log)
	return cfg, nil
}

// openApp wires every dependency. Callers must Close the result.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	dbPath, _ := cmd.Flags().GetString("db")
	return app.New(cmd.Context(), cfg, nil, app.Options{DBPath: dbPath})
}

// openStore opens only the SQLite store, for commands that read the event log.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	path, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

// resolveDBPath returns the database path using --db (highest priority),
// then store.path from config, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.Store.Path
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
