package commands

import (
	"github.com/spf13/cobra"

	"patterns/internal/app"
	"patterns/internal/ledger"
)

// Execute runs the CLI on the process streams.
func Execute() error {
	return newRootCmd(app.StdIO()).Execute()
}

func newRootCmd(streams app.IO) *cobra.Command {
	var (
		configPath string
		logLevel   string
		reportPath string
		currency   string
		wire       *app.Wire
	)

	root := &cobra.Command{
		Use:          "expensetracker",
		Short:        "Track expenses and income and export reports",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Bootstrap(configPath, func(c *app.Config) {
				flags := cmd.Flags()
				if flags.Changed("log-level") {
					c.LogLevel = logLevel
				}
				if flags.Changed("report") {
					c.ReportPath = reportPath
				}
				if flags.Changed("currency") {
					c.CurrencySymbol = currency
				}
			}, streams)
			if err != nil {
				return err
			}
			wire = w
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			defer func() { _ = wire.Logger.Sync() }()

			con := wire.Console
			cur := ledger.Currency{Symbol: wire.Config.CurrencySymbol}
			list := ledger.NewTransactionList(wire.Logger)
			reports := ledger.NewReports(con, wire.Config.ReportPath, cur, wire.Logger)
			return ledger.NewExpenseMenu(list, con, reports, wire.Logger).Run(con)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "off", "diagnostic log level: off, debug, info, warn, error")
	root.Flags().StringVar(&reportPath, "report", ledger.DefaultReportPath, "text report file, replaced on each export")
	root.Flags().StringVar(&currency, "currency", "$", "currency symbol for amounts")
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	return root
}
