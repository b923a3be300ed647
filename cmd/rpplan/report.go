package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/config"
	"github.com/rpgo/retirement-planner/internal/output"
)

func reportCmd() *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "report <plan.yaml>",
		Short: "Build a full plan report from a planner configuration file",
		Long: fmt.Sprintf(`Loads a planner configuration, runs every calculator it enables and renders
the report. Without --output the report is written to stdout.

Formats: %v`, output.AvailableFormatterNames()),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(args[0])
			if err != nil {
				return err
			}

			// the plan file carries its own assumptions
			planEngine, err := calculation.NewCalculationEngineWithAssumptions(cfg.Assumptions)
			if err != nil {
				return err
			}
			planEngine.SetLogger(engine.Logger)

			report, err := planEngine.BuildPlan(cfg)
			if err != nil {
				return err
			}

			if outDir == "" {
				return render(cmd.OutOrStdout(), report, format)
			}
			path, err := output.GenerateReport(report, format, outDir)
			if err != nil {
				return err
			}
			logger.Info("report written", zap.String("path", path), zap.String("format", format))
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "console", "output format (or all with --output)")
	cmd.Flags().StringVarP(&outDir, "output", "o", "", "directory to write a timestamped report file to")
	return cmd
}

func exampleConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [file]",
		Short: "Write an example planner configuration",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.NewInputParser().CreateExampleConfiguration()
			if len(args) == 1 {
				return output.SaveConfiguration(cfg, args[0])
			}
			b, err := yaml.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}
