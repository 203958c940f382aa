package config

import (
	"fmt"
	"time"

	"github.com/veranemoloko/cssgrab/internal/validation"
)

const (
	EngineBrowser = "browser"
	EngineStatic  = "static"
)

// Config holds all application configuration settings.
type Config struct {
	DownloadDir string `envconfig:"DOWNLOAD_DIR" default:"css_downloads" validate:"required"`

	Engine       string   `envconfig:"ENGINE" default:"browser" validate:"oneof=browser static"`
	BrowserBin   string   `envconfig:"BROWSER_BIN"`
	BrowserFlags []string `envconfig:"BROWSER_FLAGS"`
	Headless     bool     `envconfig:"HEADLESS" default:"false"`
	Devtools     bool     `envconfig:"DEVTOOLS" default:"true"`

	SettleDelay time.Duration `envconfig:"SETTLE_DELAY" default:"2s" validate:"min=0"`
	Notify      bool          `envconfig:"NOTIFY" default:"true"`
	NotifyDelay time.Duration `envconfig:"NOTIFY_DELAY" default:"1s" validate:"min=0"`

	// Zero keeps the HTTP client's default, which never times out.
	DownloadTimeout time.Duration `envconfig:"DOWNLOAD_TIMEOUT" default:"0s" validate:"min=0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`

	MetricsFile string `envconfig:"METRICS_FILE"`
	NoColor     bool   `envconfig:"NO_COLOR" default:"false"`
}

// Validate checks the configuration for invalid or missing values.
func (c *Config) Validate() error {
	if err := validation.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}
