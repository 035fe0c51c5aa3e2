package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/backline/internal/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "backline",
	Short: "Cross-match defensive pattern mining",
	Long: `Backline mines recorded football-match event logs for recurring short
tactical sequences that precede moments of elevated defensive danger, and
scores each pattern's association with conceding a goal using calibrated
Bayesian confidence statistics.`,
	Version:       "0.2.0",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// Execute runs the CLI.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "backline:", err)
		return err
	}
	return nil
}

func init() {
	cobra.OnInitialize(initViper)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml)")
	rootCmd.PersistentFlags().String("team", "", "our team name (everything else is opponent context)")
	rootCmd.PersistentFlags().String("source", "", "match source provider (jsonfile, httpexport)")
	rootCmd.PersistentFlags().String("match-dir", "", "directory of <match>.json exports (jsonfile source)")
	rootCmd.PersistentFlags().String("endpoint", "", "export API base URL (httpexport source)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")

	viper.BindPFlag("team", rootCmd.PersistentFlags().Lookup("team"))
	viper.BindPFlag("source.provider", rootCmd.PersistentFlags().Lookup("source"))
	viper.BindPFlag("source.dir", rootCmd.PersistentFlags().Lookup("match-dir"))
	viper.BindPFlag("source.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(matchesCmd)
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func initViper() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err != nil {
			fmt.Fprintln(os.Stderr, "backline: read config:", err)
			os.Exit(1)
		}
	}
	viper.SetEnvPrefix("BACKLINE")
	viper.AutomaticEnv()
}

// loadConfig builds the run configuration: env defaults from config.Load,
// overlaid by the config file and flags bound through viper.
func loadConfig() config.Config {
	cfg := config.Load()

	setString(&cfg.TeamName, "team")
	setString(&cfg.Mode, "mode")
	setString(&cfg.Source.Provider, "source.provider")
	setString(&cfg.Source.Dir, "source.dir")
	setString(&cfg.Source.Endpoint, "source.endpoint")
	setString(&cfg.Source.APIKey, "source.api_key")
	setString(&cfg.LogLevel, "log_level")

	setInt(&cfg.Fingerprint.WindowSec, "fingerprint.window_sec")
	setInt(&cfg.Fingerprint.TopK, "fingerprint.top_k")
	setInt(&cfg.TimeToGoalLookaheadSec, "goal_lookahead_sec")

	if viper.IsSet("similarity") {
		cfg.Cluster.SimilarityThreshold = viper.GetFloat64("similarity")
		cfg.Score.SimilarityThreshold = viper.GetFloat64("similarity")
	}
	setInt(&cfg.Score.MinMatchFrequency, "min_matches")
	setInt(&cfg.Score.MinOccurrences, "min_occurrences")
	setFloat(&cfg.Score.MinLift, "min_lift")
	setFloat(&cfg.Score.CILevel, "ci_level")

	setString(&cfg.Output.Format, "output.format")
	setString(&cfg.Output.Path, "output.path")
	setString(&cfg.Output.WebhookURL, "output.webhook_url")
	setInt(&cfg.Output.TopN, "output.top_n")

	if viper.IsSet("stopwords") {
		cfg.Stopwords = viper.GetStringSlice("stopwords")
	}
	if viper.IsSet("cause_codes") {
		cfg.CauseCodes = viper.GetStringSlice("cause_codes")
	}

	cfg.Risk.TeamName = cfg.TeamName
	cfg.Detect.TeamName = cfg.TeamName
	return cfg
}

func setString(dst *string, key string) {
	if viper.IsSet(key) && viper.GetString(key) != "" {
		*dst = viper.GetString(key)
	}
}

func setInt(dst *int, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetInt(key)
	}
}

func setFloat(dst *float64, key string) {
	if viper.IsSet(key) {
		*dst = viper.GetFloat64(key)
	}
}
