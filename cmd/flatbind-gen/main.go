// Command flatbind-gen generates ahead-of-time populate and extract
// functions from layout files.
//
//	flatbind-gen --layout store/testdata/stock.yaml --out store/storebind --package storebind
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

// go build -ldflags "-X main.version=1.0.1"
var version = "0.0.1"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logrus.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "flatbind-gen",
		Usage:   "generate flat-file binding code from layout files",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "path to config file",
			},
			&cli.StringSliceFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Usage:   "layout file (repeatable)",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "output directory",
			},
			&cli.StringFlag{
				Name:  "package",
				Usage: "name of the generated package",
			},
			&cli.StringFlag{
				Name:  "package-path",
				Usage: "import path of the generated package",
			},
			&cli.StringFlag{
				Name:  "dir",
				Usage: "directory entity packages are resolved from",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "log at debug level",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := getConf(c)
			if err != nil {
				return err
			}

			initLogger(cfg.Logger)

			return run(c.Context, cfg)
		},
	}
}
