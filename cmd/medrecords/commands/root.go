package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"patterns/internal/app"
	"patterns/internal/records"
)

// Execute runs the CLI on the process streams.
func Execute() error {
	return newRootCmd(app.StdIO()).Execute()
}

func newRootCmd(streams app.IO) *cobra.Command {
	var (
		configPath  string
		logLevel    string
		visitorName string
		recordsPath string
		wire        *app.Wire
	)

	root := &cobra.Command{
		Use:          "medrecords",
		Short:        "List patients and medics",
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

			v, err := records.NewVisitor(visitorName, wire.Console.Out())
			if err != nil {
				return err
			}

			dir := records.Seed()
			if recordsPath != "" {
				if dir, err = records.LoadFile(recordsPath); err != nil {
					return err
				}
			}
			wire.Logger.Debug("showing records",
				zap.String("visitor", visitorName),
				zap.Int("patients", len(dir.Patients)),
				zap.Int("medics", len(dir.Medics)))

			dir.Show(v)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (.yaml, .yml or .toml)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "off", "diagnostic log level: off, debug, info, warn, error")
	root.Flags().StringVar(&visitorName, "visitor", "data", "what to print per record: name or data")
	root.Flags().StringVar(&recordsPath, "records", "", "YAML file with patients and medics (default built-in records)")
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)
	return root
}
