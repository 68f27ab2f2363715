package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/greenboard-org/greenboard/config"
	"github.com/greenboard-org/greenboard/dataset"
	"github.com/greenboard-org/greenboard/narrative"
	"github.com/greenboard-org/greenboard/state"
	"github.com/greenboard-org/greenboard/views"
)

type rootFlags struct {
	configPath string
	source     string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "greenboard",
		Short: "Interactive analytics dashboard for public building energy records",
		Long: `Greenboard loads a static dataset of public building energy, water, and
sustainability records once per session and drives an interactive
filter/aggregate/visualize pipeline over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if flags.verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "greenboard.yaml", "config file path")
	cmd.PersistentFlags().StringVar(&flags.source, "data", "", "dataset source (URL or file), overrides config")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	cmd.AddCommand(newSummaryCmd(flags))
	cmd.AddCommand(newInteractCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	return cmd
}

// session is everything a subcommand needs after startup.
type session struct {
	cfg     *config.Config
	records []dataset.Building
}

// newSession loads config and dataset. A load failure here is fatal to the
// whole dashboard — there is no partial functionality without records.
func newSession(ctx context.Context, flags *rootFlags) (*session, error) {
	cfg, err := config.Load(flags.configPath, slog.Default())
	if err != nil {
		return nil, err
	}
	source := cfg.Dataset.Source
	if flags.source != "" {
		source = flags.source
	}

	loader := dataset.NewLoader(nil, slog.Default())
	records, err := loader.Load(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("dashboard cannot start: %w", err)
	}
	return &session{cfg: cfg, records: records}, nil
}

func (s *session) viewOptions() views.Options {
	return views.Options{
		TargetBins:    s.cfg.Histogram.TargetBins,
		SanityCeiling: s.cfg.Histogram.SanityCeiling,
	}
}

func (s *session) defaultView() views.View {
	v := views.View(s.cfg.DefaultView)
	for _, known := range views.All {
		if v == known {
			return v
		}
	}
	return views.ViewOverview
}

// appOptions assembles the App options, wiring captions only when an API
// key is present and the caller asked for them.
func (s *session) appOptions(withCaptions bool) []state.Option {
	opts := []state.Option{
		state.WithLogger(slog.Default()),
		state.WithViewOptions(s.viewOptions()),
	}
	if withCaptions {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			slog.Warn("captions requested but GEMINI_API_KEY is not set")
		} else {
			gen := narrative.NewGemini(narrative.Config{
				APIKey:   apiKey,
				Model:    s.cfg.Narrative.Model,
				Endpoint: s.cfg.Narrative.Endpoint,
			}, slog.Default())
			opts = append(opts, state.WithCaptioner(gen))
		}
	}
	return opts
}
