package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/tagkit/internal/errors"
	"github.com/vango-dev/tagkit/pkg/components"
	"github.com/vango-dev/tagkit/pkg/style"
	"github.com/vango-dev/tagkit/pkg/tag"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "tagkit.json"

	// DefaultAddr is the default address of the callback server.
	DefaultAddr = "localhost:3000"

	// DefaultMetricsPath is where the callback server exposes Prometheus metrics.
	DefaultMetricsPath = "/metrics"

	// DefaultExportDir is the default export directory.
	DefaultExportDir = "dist"
)

// Config represents the complete tagkit.json configuration.
type Config struct {
	// Indent is the number of spaces before each CSS declaration.
	Indent int `json:"indent,omitempty"`

	// Head contains the default head added to rendered pages.
	Head HeadConfig `json:"head,omitempty"`

	// Serve contains callback server configuration.
	Serve ServeConfig `json:"serve,omitempty"`

	// Export contains the export target.
	Export ExportConfig `json:"export,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// HeadConfig describes the default page head.
type HeadConfig struct {
	// OmitHTMX leaves out the htmx script tag.
	OmitHTMX bool `json:"omitHTMX,omitempty"`

	// Title is added as a <title> element when set.
	Title string `json:"title,omitempty"`

	// Semantic names a classless CSS framework, e.g. "pico" or "sakura:dark".
	Semantic string `json:"semantic,omitempty"`

	// StyleSheets are extra stylesheet URLs.
	StyleSheets []string `json:"styleSheets,omitempty"`
}

// ServeConfig contains callback server settings.
type ServeConfig struct {
	// Addr is the listen address.
	Addr string `json:"addr,omitempty"`

	// MetricsPath is the Prometheus endpoint. "-" disables it.
	MetricsPath string `json:"metricsPath,omitempty"`
}

// ExportConfig selects a local directory or an S3 bucket.
type ExportConfig struct {
	Dir string `json:"dir,omitempty"`

	Bucket    string `json:"bucket,omitempty"`
	Prefix    string `json:"prefix,omitempty"`
	Region    string `json:"region,omitempty"`
	Endpoint  string `json:"endpoint,omitempty"`
	PathStyle bool   `json:"pathStyle,omitempty"`
}

// UsesS3 reports whether exports go to a bucket.
func (e ExportConfig) UsesS3() bool {
	return e.Bucket != ""
}

// Default creates a Config with default values.
func Default() *Config {
	return &Config{
		Indent: style.DefaultIndent,
		Serve: ServeConfig{
			Addr:        DefaultAddr,
			MetricsPath: DefaultMetricsPath,
		},
		Export: ExportConfig{
			Dir: DefaultExportDir,
		},
	}
}

// Load reads configuration from the specified directory.
// A directory without tagkit.json yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		cfg.configPath = path
		return cfg, nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("C001").WithDetail(path).Wrap(err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("C001").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}
	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return errors.New("C002").Wrap(err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("C001").WithDetail(path).Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Serve.Addr == "" {
		c.Serve.Addr = DefaultAddr
	}
	if c.Serve.MetricsPath == "" {
		c.Serve.MetricsPath = DefaultMetricsPath
	}
	switch {
	case c.Export.UsesS3() && c.Export.Dir == DefaultExportDir:
		c.Export.Dir = ""
	case c.Export.Dir == "" && !c.Export.UsesS3():
		c.Export.Dir = DefaultExportDir
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > 16 {
		return errors.New("C002").
			WithDetailf("indent %d", c.Indent).
			WithSuggestion("Indent must be between 0 and 16")
	}
	if c.Head.Semantic != "" {
		if _, ok := components.Semantic(c.Head.Semantic); !ok {
			return errors.New("C002").
				WithDetailf("unknown semantic framework %q", c.Head.Semantic).
				WithSuggestion("Use mvp, sakura, sakura:<flavour>, simple, tacit or pico")
		}
	}
	if mp := c.Serve.MetricsPath; mp != "" && mp != "-" && !strings.HasPrefix(mp, "/") {
		return errors.New("C002").
			WithDetailf("metrics path %q", mp).
			WithSuggestion("Metrics paths start with '/'")
	}
	if c.Export.UsesS3() && c.Export.Dir != "" && c.Export.Dir != DefaultExportDir {
		return errors.New("C002").
			WithDetail("export has both a directory and a bucket")
	}
	if !c.Export.UsesS3() && (c.Export.Prefix != "" || c.Export.Endpoint != "") {
		return errors.New("C002").
			WithDetail("export prefix or endpoint set without a bucket")
	}
	return nil
}

// MetricsEnabled reports whether the server exposes /metrics.
func (c *Config) MetricsEnabled() bool {
	return c.Serve.MetricsPath != "-"
}

// HeadNodes builds the default head elements, excluding the htmx script
// which the renderer adds itself.
func (c *Config) HeadNodes() []*tag.Node {
	var nodes []*tag.Node
	if c.Head.Title != "" {
		nodes = append(nodes, tag.Title(c.Head.Title))
	}
	if link, ok := components.Semantic(c.Head.Semantic); ok {
		nodes = append(nodes, link)
	}
	for _, href := range c.Head.StyleSheets {
		nodes = append(nodes, tag.Link(tag.Rel("stylesheet"), tag.Href(href)))
	}
	return nodes
}

// ExportPath returns the absolute export directory.
func (c *Config) ExportPath() string {
	if filepath.IsAbs(c.Export.Dir) {
		return c.Export.Dir
	}
	return filepath.Join(c.Dir(), c.Export.Dir)
}
