package config

import (
	"errors"
	"net/url"
	"strings"
)

type Config struct {
	BaseURL string `yaml:"base_url"`

	HTTP struct {
		Address string `yaml:"address"`
	} `yaml:"http"`

	Logging struct {
		Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
		Format string `yaml:"format"` // "text" | "json"
	} `yaml:"logging"`

	Site SiteConfig `yaml:"site"`
}

type SiteConfig struct {
	Title       string `yaml:"title"`
	Headline    string `yaml:"headline"`
	Description string `yaml:"description"`
}

func (c *Config) Defaults() {
	if c.HTTP.Address == "" {
		c.HTTP.Address = ":8080"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "json"
	}
	if c.Site.Title == "" {
		c.Site.Title = "Landing"
	}
	if c.Site.Headline == "" {
		c.Site.Headline = "Everything your team needs, in one place"
	}
	if c.Site.Description == "" {
		c.Site.Description = "Start a free trial today. No credit card required."
	}
}

func (c *Config) Validate() error {
	var errs []error
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, errors.New("logging.level must be one of debug, info, warn, error"))
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		errs = append(errs, errors.New("logging.format must be text or json"))
	}
	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, errors.New("base_url must be an absolute URL"))
		}
	}
	return errors.Join(errs...)
}

// AbsURL resolves a site path against BaseURL. Without a BaseURL the path is
// returned unchanged.
func (c *Config) AbsURL(path string) string {
	base := strings.TrimRight(c.BaseURL, "/")
	if base == "" {
		return path
	}
	return base + "/" + strings.TrimLeft(path, "/")
}
