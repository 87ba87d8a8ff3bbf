package commands

import (
	"github.com/spf13/cobra"

	"patterns/internal/app"
	"patterns/internal/command"
	"patterns/internal/ticker"
)

// Execute runs the CLI on the process streams.
func Execute() error {
	return newRootCmd(app.StdIO()).Execute()
}

func newRootCmd(streams app.IO) *cobra.Command {
	var (
		configPath string
		logLevel   string
		wire       *app.Wire
	)

	root := &cobra.Command{
		Use:          "stockticker",
		Short:        "Interactive stock price ticker",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			w, err := app.Bootstrap(configPath, func(c *app.Config) {
				if cmd.Flags().Changed("log-level") {
					c.LogLevel = logLevel
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

			st := ticker.New(wire.Logger)
			return command.NewStockMenu(st, wire.Console, wire.Logger).Run(wire.Console)
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "off", "diagnostic log level: off, debug, info, warn, error")
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	return root
}
