package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/batsched/batsched/app"
	"github.com/batsched/batsched/config"
	"github.com/batsched/batsched/core/model"
	"github.com/batsched/batsched/infra/logger"
	"github.com/batsched/batsched/pkg/export"
)

var (
	genCourses   []string
	genExactDays int
	genMax       int
	genMode      string
	genEarliest  string
	genLatest    string
	genStrict    bool
	genGaps      bool
	genBalance   bool
	genOutput    string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate ranked conflict-free schedules",
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringSliceVar(&genCourses, "courses", nil, "required course codes")
	generateCmd.Flags().IntVar(&genExactDays, "exact-days", 0, "exact weekly day count (4, 5 or 6; 0 disables)")
	generateCmd.Flags().IntVar(&genMax, "max", 0, "result cap (0 for default)")
	generateCmd.Flags().StringVar(&genMode, "prefs", "rank", "instructor preference mode: rank or filter")
	generateCmd.Flags().StringVar(&genEarliest, "earliest", "", "earliest start, e.g. \"09:00 AM\"")
	generateCmd.Flags().StringVar(&genLatest, "latest", "", "latest end, e.g. \"06:00 PM\"")
	generateCmd.Flags().BoolVar(&genStrict, "strict-bounds", false, "filter candidates on time bounds instead of penalising")
	generateCmd.Flags().BoolVar(&genGaps, "fewer-gaps", false, "prefer schedules with fewer same-day gaps")
	generateCmd.Flags().BoolVar(&genBalance, "balanced", false, "prefer balanced daily class load")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "json", "output format: json or csv")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}
	ranked, err := svc.Engine.Generate(ctx, req)
	if err != nil {
		return err
	}
	switch genOutput {
	case "json":
		return export.WriteJSON(cmd.OutOrStdout(), ranked)
	case "csv":
		return export.WriteCSV(cmd.OutOrStdout(), ranked)
	default:
		return fmt.Errorf("unsupported output format: %s", genOutput)
	}
}

func buildRequest(cfg *config.Config) (model.Request, error) {
	req := model.Request{
		Courses:            genCourses,
		Preferred:          cfg.Preferences,
		ExactDays:          genExactDays,
		MaxResults:         genMax,
		StrictTimeBounds:   genStrict,
		PreferFewerGaps:    genGaps,
		PreferBalancedLoad: genBalance,
	}
	switch genMode {
	case "rank":
		req.Mode = model.InstructorRank
	case "filter":
		req.Mode = model.InstructorFilter
	default:
		return model.Request{}, fmt.Errorf("unsupported preference mode: %s", genMode)
	}
	if genEarliest != "" {
		m, err := model.ParseClockTime(genEarliest)
		if err != nil {
			return model.Request{}, fmt.Errorf("earliest: %w", err)
		}
		req.EarliestStart = m
	}
	if genLatest != "" {
		m, err := model.ParseClockTime(genLatest)
		if err != nil {
			return model.Request{}, fmt.Errorf("latest: %w", err)
		}
		req.LatestEnd = m
	}
	return req, nil
}
