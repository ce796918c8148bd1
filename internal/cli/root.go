package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"household/internal/config"
	"household/internal/core"
	"household/internal/demo"
	"household/internal/log"
	"household/internal/services"
)

// app carries what every subcommand needs once flags are parsed.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	debug  bool
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds the household command tree. Running it without a
// subcommand runs the demonstration.
func NewRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "household",
		Short:        "Household money, jobs and family model",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			LoadEnvFile()
			cfg, err := LoadAndValidateConfig()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = SetupLogger(cfg, a.debug)
			a.logger.Debug("Configuration loaded",
				log.FieldOperation, log.OpStartup, log.FieldLogLevel, cfg.LogLevel, log.FieldDefaultCurrency, cfg.DefaultCurrency)
			return nil
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runDemo(c.OutOrStdout())
		},
	}

	cmd.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(newDemoCmd(a), newConvertCmd(a), newIncomeCmd(a))
	return cmd
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run the demonstration sequence",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return a.runDemo(c.OutOrStdout())
		},
	}
}

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert AMOUNT FROM [TO]",
		Short: "Convert an amount between currencies",
		Long:  "Convert an amount between USD, GBP, EUR and CAN. TO defaults to DEFAULT_CURRENCY.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(c *cobra.Command, args []string) error {
			amount, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid amount %q: %w", args[0], err)
			}
			money, err := services.ParseMoney(amount, args[1])
			if err != nil {
				return err
			}
			target := a.cfg.Currency()
			if len(args) == 3 {
				if target, err = core.ParseCurrency(args[2]); err != nil {
					return fmt.Errorf("parse currency %q: %w", args[2], err)
				}
			}

			result := money.Convert(target)
			a.logger.WithComponent(log.ComponentMoney).Debug("Converted amount",
				log.NewFields().
					WithMoney(money.Amount, money.Currency.String()).
					WithOperation(log.OpConvert).
					With(log.FieldTarget, target.String()).
					With(log.FieldResult, result).
					ToSlice()...)
			fmt.Fprintln(c.OutOrStdout(), core.NewMoney(result, target))
			return nil
		},
	}
}

func newIncomeCmd(a *app) *cobra.Command {
	var (
		hourly bool
		hours  float64
		title  string
	)

	cmd := &cobra.Command{
		Use:   "income SALARY",
		Short: "Calculate income for a salary",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			salary, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid salary %q: %w", args[0], err)
			}
			frequency := core.PerYear
			if hourly {
				frequency = core.PerHour
			}
			job := core.NewJob(title, salary, frequency)

			var worked *float64
			if c.Flags().Changed("hours") {
				worked = core.Hours(hours)
			}
			income := job.CalculateIncome(worked)
			a.logger.WithComponent(log.ComponentJob).Debug("Calculated income",
				log.NewFields().
					WithJob(job.Title, job.Salary).
					WithOperation(log.OpIncome).
					With(log.FieldHours, worked != nil).
					ToSlice()...)

			out := c.OutOrStdout()
			fmt.Fprintln(out, job)
			fmt.Fprintln(out, core.FormatAmount(income))
			return nil
		},
	}

	cmd.Flags().BoolVar(&hourly, "hourly", false, "salary is an hourly rate")
	cmd.Flags().Float64Var(&hours, "hours", 0, "hours worked (hourly jobs only)")
	cmd.Flags().StringVar(&title, "title", "Job", "job title")
	return cmd
}

func (a *app) runDemo(out io.Writer) error {
	svc := services.NewHouseholdService(out, a.logger.WithComponent(log.ComponentDemo))
	demo.Run(out, svc)
	return nil
}
