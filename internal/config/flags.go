package config

import "github.com/urfave/cli/v3"

// Flags returns command line flags bound to c. The current values of c, normally
// loaded from the environment, become the flag defaults.
func (c *Config) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dir",
			Usage:       "destination directory for downloaded stylesheets",
			Value:       c.DownloadDir,
			Destination: &c.DownloadDir,
		},
		&cli.StringFlag{
			Name:        "engine",
			Usage:       "page inspection engine (browser, static)",
			Value:       c.Engine,
			Destination: &c.Engine,
		},
		&cli.StringFlag{
			Name:        "browser-bin",
			Usage:       "browser executable; empty to let the launcher find one",
			Value:       c.BrowserBin,
			Destination: &c.BrowserBin,
		},
		&cli.StringSliceFlag{
			Name:        "browser-flag",
			Usage:       "extra browser switch, name or name=value (repeatable)",
			Value:       c.BrowserFlags,
			Destination: &c.BrowserFlags,
		},
		&cli.BoolFlag{
			Name:        "headless",
			Usage:       "run the browser without a window",
			Value:       c.Headless,
			Destination: &c.Headless,
		},
		&cli.BoolFlag{
			Name:        "devtools",
			Usage:       "open developer tools for the page",
			Value:       c.Devtools,
			Destination: &c.Devtools,
		},
		&cli.DurationFlag{
			Name:        "settle",
			Usage:       "wait after navigation before listing stylesheets",
			Value:       c.SettleDelay,
			Destination: &c.SettleDelay,
		},
		&cli.BoolFlag{
			Name:        "notify",
			Usage:       "show an in-page alert asking to return to the terminal",
			Value:       c.Notify,
			Destination: &c.Notify,
		},
		&cli.DurationFlag{
			Name:        "download-timeout",
			Usage:       "per-request timeout, 0 for none",
			Value:       c.DownloadTimeout,
			Destination: &c.DownloadTimeout,
		},
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level (debug, info, warn, error)",
			Value:       c.LogLevel,
			Destination: &c.LogLevel,
		},
		&cli.StringFlag{
			Name:        "log-format",
			Usage:       "log format (text, json)",
			Value:       c.LogFormat,
			Destination: &c.LogFormat,
		},
		&cli.StringFlag{
			Name:        "metrics-file",
			Usage:       "write prometheus metrics to this file at the end of the run",
			Value:       c.MetricsFile,
			Destination: &c.MetricsFile,
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "disable colored output",
			Value:       c.NoColor,
			Destination: &c.NoColor,
		},
	}
}
