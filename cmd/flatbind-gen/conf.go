package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"flatbind/internal/config"
)

// getConf loads the config file and applies command line overrides.
func getConf(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, err
	}

	if layouts := c.StringSlice("layout"); len(layouts) > 0 {
		cfg.Layouts = layouts
	}

	if c.IsSet("out") {
		cfg.Generator.OutputDir = c.String("out")
	}

	if c.IsSet("package") {
		cfg.Generator.PackageName = c.String("package")
	}

	if c.IsSet("package-path") {
		cfg.Generator.PackagePath = c.String("package-path")
	}

	if c.IsSet("dir") {
		cfg.Generator.Dir = c.String("dir")
	}

	if c.Bool("verbose") {
		cfg.Logger.Level = logrus.DebugLevel.String()
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "validate config")
	}

	if len(cfg.Layouts) == 0 {
		return nil, errors.New("no layout files given")
	}

	return cfg, nil
}

// initLogger configures the global logrus logger.
func initLogger(cfg config.LoggerCfg) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	logrus.SetLevel(level)
	logrus.SetReportCaller(cfg.Caller)

	if cfg.HumanReadable {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
