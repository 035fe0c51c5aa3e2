package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/crimson-sun/backline/internal/config"
	"github.com/crimson-sun/backline/internal/detect"
	"github.com/crimson-sun/backline/internal/engine/cluster"
	"github.com/crimson-sun/backline/internal/engine/codes"
	"github.com/crimson-sun/backline/internal/engine/fingerprint"
	"github.com/crimson-sun/backline/internal/engine/score"
	"github.com/crimson-sun/backline/internal/logging"
	"github.com/crimson-sun/backline/internal/output"
	"github.com/crimson-sun/backline/internal/output/file"
	"github.com/crimson-sun/backline/internal/output/multi"
	"github.com/crimson-sun/backline/internal/output/stdout"
	"github.com/crimson-sun/backline/internal/output/webhook"
	"github.com/crimson-sun/backline/internal/pipeline"
	"github.com/crimson-sun/backline/internal/risk"
	"github.com/crimson-sun/backline/internal/source"

	// Register source implementations.
	_ "github.com/crimson-sun/backline/internal/source/httpexport"
	_ "github.com/crimson-sun/backline/internal/source/jsonfile"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Mine the corpus for conceding patterns",
	Long: `Analyze enriches every match's danger moments, clusters the focus set
by fingerprint similarity, scores each cluster against the full baseline, and
prints the ranked pattern summary.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().String("mode", "", "focus-set filter: all, goals, or critical")
	analyzeCmd.Flags().Int("top", 0, "patterns shown in the summary")
	analyzeCmd.Flags().Bool("json", false, "emit the full run document as JSON")
	analyzeCmd.Flags().String("out", "", "append the run document to an NDJSON file")
	analyzeCmd.Flags().String("webhook", "", "deliver the narrative payload to this URL")

	viper.BindPFlag("mode", analyzeCmd.Flags().Lookup("mode"))
	viper.BindPFlag("output.top_n", analyzeCmd.Flags().Lookup("top"))
	viper.BindPFlag("output.path", analyzeCmd.Flags().Lookup("out"))
	viper.BindPFlag("output.webhook_url", analyzeCmd.Flags().Lookup("webhook"))
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		cfg.Output.Format = "json"
	}
	logging.Init(cfg.Output.Format == "json", logging.ParseLevel(cfg.LogLevel))

	// Invalid mode is a configuration error: fail before any work.
	mode, err := pipeline.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	src, err := source.Open(cfg.Source)
	if err != nil {
		return err
	}

	sink, err := buildSink(cfg.Output)
	if err != nil {
		return err
	}
	defer sink.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := newPipeline(cfg, src)
	summary, err := p.Run(ctx, mode)
	if err != nil {
		return err
	}

	return sink.Write(ctx, output.Document{
		RunID:         summary.RunID,
		Mode:          string(summary.Mode),
		TotalMatches:  summary.TotalMatches,
		BaselineCount: summary.BaselineCount,
		FocusCount:    summary.FocusCount,
		Patterns:      summary.Patterns,
	})
}

func newPipeline(cfg config.Config, src source.Source) *pipeline.Pipeline {
	catalog := codes.New(
		codes.DefaultGroups(),
		codes.DefaultOpponentWeights(),
		codes.DefaultOwnWeights(),
		cfg.Stopwords,
		cfg.CauseCodes,
	)
	return pipeline.New(
		src,
		risk.New(cfg.Risk, catalog),
		detect.New(cfg.Detect),
		fingerprint.New(cfg.Fingerprint, catalog),
		cluster.New(cfg.Cluster, catalog),
		score.New(cfg.Score),
		cfg.TeamName,
		cfg.TimeToGoalLookaheadSec,
	)
}

func buildSink(cfg config.OutputConfig) (output.Sink, error) {
	format := stdout.Summary
	if cfg.Format == "json" {
		format = stdout.JSON
	}
	sinks := []output.Sink{stdout.New(format, cfg.TopN)}

	if cfg.Path != "" {
		f, err := file.New(cfg.Path)
		if err != nil {
			return nil, err
		}
		sinks = append(sinks, f)
	}
	if cfg.WebhookURL != "" {
		sinks = append(sinks, webhook.New(cfg.WebhookURL, "", cfg.TopN))
	}

	if len(sinks) == 1 {
		return sinks[0], nil
	}
	return multi.New(sinks...), nil
}

var matchesCmd = &cobra.Command{
	Use:   "matches",
	Short: "List the matches in the corpus",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := loadConfig()
		logging.Init(false, logging.ParseLevel(cfg.LogLevel))

		src, err := source.Open(cfg.Source)
		if err != nil {
			return err
		}
		matches, err := src.Matches(cmd.Context())
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Println(m)
		}
		return nil
	},
}
