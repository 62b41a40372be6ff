package router

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/vitalvas/routux/location"
	"github.com/vitalvas/routux/pathmatch"
)

// DefaultAdapter is the location adapter used when none is configured.
const DefaultAdapter = "hash"

// LocationConfig selects the location adapter and its options.
type LocationConfig struct {
	// Adapter is the name of a registered location adapter.
	Adapter string           `yaml:"adapter"`
	Options location.Options `yaml:",inline"`
}

// Config is the router configuration.
type Config struct {
	Location LocationConfig    `yaml:"location"`
	Regexp   pathmatch.Options `yaml:"regexp"`
}

// DefaultConfig returns the hash adapter with the "#" prefix and
// case-insensitive, non-strict, end-anchored matching.
func DefaultConfig() Config {
	return Config{
		Location: LocationConfig{
			Adapter: DefaultAdapter,
			Options: location.Options{PathPrefix: location.DefaultPathPrefix},
		},
		Regexp: pathmatch.DefaultOptions(),
	}
}

// ParseConfig decodes YAML onto DefaultConfig. Keys absent from data keep
// their default.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}
	return ParseConfig(data)
}

// Validate checks that the configured adapter is registered.
func (c Config) Validate() error {
	if c.Location.Adapter == "" {
		return fmt.Errorf("%w: location adapter is empty", ErrConfiguration)
	}
	if _, err := location.Lookup(c.Location.Adapter); err != nil {
		return fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	return nil
}

type options struct {
	cfg      Config
	location location.Location
	logger   *zap.Logger
	metrics  *Metrics
	seq      *Sequence
}

// Option configures a Router.
type Option func(*options)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		host := o.cfg.Location.Options.Host
		o.cfg = cfg
		if o.cfg.Location.Options.Host == nil {
			o.cfg.Location.Options.Host = host
		}
	}
}

// WithRegexp sets the pattern matching options.
func WithRegexp(opts pathmatch.Options) Option {
	return func(o *options) {
		o.cfg.Regexp = opts
	}
}

// WithLocation uses l instead of creating a location from the
// configuration. The router takes over l; it is never swapped.
func WithLocation(l location.Location) Option {
	return func(o *options) {
		o.location = l
	}
}

// WithHost sets the environment the hash adapter is layered over.
func WithHost(h location.Host) Option {
	return func(o *options) {
		o.cfg.Location.Options.Host = h
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics enables Prometheus metrics.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithSequence sets the source of router and route IDs. Each router gets
// its own Sequence starting at 0 by default.
func WithSequence(s *Sequence) Option {
	return func(o *options) {
		o.seq = s
	}
}
