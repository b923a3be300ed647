// Command rpplan projects retirement portfolios and runs the planning
// calculators from the command line or over HTTP.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rpgo/retirement-planner/internal/calculation"
	"github.com/rpgo/retirement-planner/internal/domain"
	"github.com/rpgo/retirement-planner/internal/logging"
)

var (
	cfgFile string
	version = "dev"

	logger *zap.Logger
	engine *calculation.CalculationEngine

	rootCmd = &cobra.Command{
		Use:   "rpplan",
		Short: "Retirement portfolio projections and planning calculators",
		Long: `rpplan projects a savings profile against the Aggressive, Balanced and Safe
allocation tiers and runs the Social Security, contribution, delay, tax and
lifetime projection calculators against the result.

All figures are illustrative and are not financial advice.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/rpplan/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")

	_ = viper.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("logging.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.AddCommand(portfoliosCmd())
	rootCmd.AddCommand(socialSecurityCmd())
	rootCmd.AddCommand(contributionCmd())
	rootCmd.AddCommand(delayCmd())
	rootCmd.AddCommand(taxCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(reportCmd())
	rootCmd.AddCommand(exampleConfigCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel()
	if logger != nil {
		_ = logger.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(fmt.Sprintf("%s/.config/rpplan", home))
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("RPPLAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	var err error
	logger, err = logging.New(logging.Options{
		Level:    viper.GetString("logging.level"),
		Encoding: viper.GetString("logging.format"),
		Verbose:  viper.GetBool("logging.verbose"),
	})
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	assumptions, err := assumptionsFromViper()
	if err != nil {
		return err
	}
	engine, err = calculation.NewCalculationEngineWithAssumptions(assumptions)
	if err != nil {
		return fmt.Errorf("invalid assumptions: %w", err)
	}
	engine.SetLogger(logging.EngineLogger(logger))
	return nil
}

// assumptionsFromViper overlays the assumptions.* keys of the CLI config
// (or RPPLAN_ASSUMPTIONS_* variables) on the defaults.
func assumptionsFromViper() (domain.Assumptions, error) {
	a := domain.DefaultAssumptions()
	rates := map[string]*decimal.Decimal{
		"assumptions.contribution_rate": &a.ContributionRate,
		"assumptions.withdrawal_rate":   &a.WithdrawalRate,
		"assumptions.inflation_rate":    &a.InflationRate,
	}
	for key, dst := range rates {
		if !viper.IsSet(key) {
			continue
		}
		v, err := decimal.NewFromString(viper.GetString(key))
		if err != nil {
			return a, fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
	}
	if viper.IsSet("assumptions.retirement_years") {
		a.RetirementYears = viper.GetInt("assumptions.retirement_years")
	}
	return a, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rpplan %s\n", version)
		},
	}
}
