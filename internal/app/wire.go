package app

import (
	"go.uber.org/zap"

	"patterns/internal/console"
)

// Wire bundles what every program needs at runtime.
type Wire struct {
	Config  Config
	Console *console.Console
	Logger  *zap.Logger
}

// NewWire validates cfg and constructs the dependency graph on streams.
func NewWire(cfg Config, streams IO) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log, err := NewLogger(cfg.LogLevel, streams.Err)
	if err != nil {
		return nil, err
	}
	log.Debug("config loaded",
		zap.String("report_path", cfg.ReportPath),
		zap.String("currency_symbol", cfg.CurrencySymbol),
		zap.String("log_level", cfg.LogLevel))

	return &Wire{
		Config:  cfg,
		Console: console.New(streams.In, streams.Out),
		Logger:  log,
	}, nil
}

// Bootstrap loads the config file at path, applies override and builds the
// Wire. override may be nil.
func Bootstrap(path string, override func(*Config), streams IO) (*Wire, error) {
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(&cfg)
	}
	return NewWire(cfg, streams)
}
