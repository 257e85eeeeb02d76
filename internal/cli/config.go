package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/plotforge/plotforge/pkg/errors"
)

// Output modes.
const (
	ModeImage = "image"
	ModeFile  = "file"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Cache backends.
const (
	CacheNone  = "none"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// duration wraps time.Duration so it can be written as "24h" in TOML.
type duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML decoding.
func (d *duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// CacheConfig configures the render cache.
type CacheConfig struct {
	// Backend selects the cache implementation: "none", "file", or "redis".
	Backend string `toml:"backend"`

	// Dir is the file cache directory. Empty means the XDG cache dir.
	Dir string `toml:"dir"`

	// TTL bounds the lifetime of cached renders (e.g. "24h").
	TTL duration `toml:"ttl"`

	// RedisAddr is the redis server address for the redis backend.
	RedisAddr string `toml:"redis_addr"`
}

// Config holds the serve command's settings. Values are layered: built-in
// defaults, then the TOML config file, then explicit flags.
type Config struct {
	// Mode selects the output finalizer: "image" returns PNGs inline,
	// "file" saves them to the temp directory and opens a viewer.
	Mode string `toml:"mode"`

	// Transport selects "stdio" or "http".
	Transport string `toml:"transport"`

	// Addr is the listen address for the http transport.
	Addr string `toml:"addr"`

	Cache CacheConfig `toml:"cache"`
}

// defaultConfig returns the built-in settings: stdio transport, inline image
// output, caching off.
func defaultConfig() Config {
	return Config{
		Mode:      ModeImage,
		Transport: TransportStdio,
		Addr:      ":8080",
		Cache: CacheConfig{
			Backend:   CacheNone,
			TTL:       duration{24 * time.Hour},
			RedisAddr: "localhost:6379",
		},
	}
}

// loadConfig reads the TOML config at path over the defaults. An empty path
// falls back to $XDG_CONFIG_HOME/plotforge/config.toml; a missing default
// file is not an error, a missing explicit one is.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if explicit {
			return cfg, errors.New(errors.ErrCodeInvalidConfig, "config file not found: %s", path)
		}
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	return cfg, nil
}

// validate checks mode, transport, and cache backend tokens.
func (c Config) validate() error {
	switch c.Mode {
	case ModeImage, ModeFile:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown mode %q (use %q or %q)", c.Mode, ModeImage, ModeFile)
	}

	switch c.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown transport %q (use %q or %q)", c.Transport, TransportStdio, TransportHTTP)
	}

	if c.Transport == TransportHTTP && c.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "http transport requires a listen address")
	}

	switch c.Cache.Backend {
	case CacheNone, CacheFile, CacheRedis:
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache backend %q (use %q, %q, or %q)", c.Cache.Backend, CacheNone, CacheFile, CacheRedis)
	}

	if c.Cache.Backend == CacheRedis && c.Cache.RedisAddr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "redis cache requires an address")
	}

	return nil
}
