package config

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/orgshift/pkg/service/platform"
	"github.com/urfave/cli/v3"
)

// Platform holds the connection settings of the learning platform services
type Platform struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Flags returns CLI flags for Platform configuration
func (p *Platform) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "platform-url",
			Usage:       "Base URL of the learning platform user services",
			Category:    "Platform",
			Sources:     cli.EnvVars("ORGSHIFT_PLATFORM_URL"),
			Destination: &p.BaseURL,
		},
		&cli.StringFlag{
			Name:        "platform-api-key",
			Usage:       "API key sent as bearer token to the platform",
			Category:    "Platform",
			Sources:     cli.EnvVars("ORGSHIFT_PLATFORM_API_KEY"),
			Destination: &p.APIKey,
		},
		&cli.DurationFlag{
			Name:        "platform-timeout",
			Usage:       "Timeout of a single platform request",
			Category:    "Platform",
			Value:       platform.DefaultTimeout,
			Sources:     cli.EnvVars("ORGSHIFT_PLATFORM_TIMEOUT"),
			Destination: &p.Timeout,
		},
	}
}

// Validate validates the platform configuration
func (p *Platform) Validate() error {
	if p.BaseURL == "" {
		return goerr.New("platform URL is required")
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil {
		return goerr.Wrap(err, "invalid platform URL", goerr.V("url", p.BaseURL))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return goerr.New("platform URL must be http or https", goerr.V("url", p.BaseURL))
	}
	if p.Timeout <= 0 {
		return goerr.New("platform timeout must be positive", goerr.V("timeout", p.Timeout))
	}
	return nil
}

// Configure creates the platform client
func (p *Platform) Configure() (*platform.Client, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return platform.New(p.BaseURL,
		platform.WithAPIKey(p.APIKey),
		platform.WithHTTPClient(&http.Client{Timeout: p.Timeout}),
	), nil
}

// LogValue returns structured log value
func (p Platform) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("url", p.BaseURL),
		slog.Bool("has_api_key", p.APIKey != ""),
		slog.Duration("timeout", p.Timeout),
	)
}
