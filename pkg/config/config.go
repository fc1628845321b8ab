// Package config loads copybook settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/copybook/config.toml (falling back to
// ~/.config/copybook/config.toml) unless a path is given explicitly:
//
//	[template]
//	column = 12
//	show_stroke_order_shadow = true
//	stroke_number = 3
//
//	[cache]
//	backend = "redis"        # file, redis, memory or none
//	redis_addr = "localhost:6379"
//
//	[strokes]
//	concurrency = 16
//	timeout = "5s"
//
//	[poetry]
//	mongo_uri = "mongodb://localhost:27017"
//
//	[server]
//	addr = ":8080"
//
// Every key is optional; [Default] supplies the rest.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/integrations/hanzi"
	"github.com/matzehuels/copybook/pkg/poetry"
	"github.com/matzehuels/copybook/pkg/strokes"
)

const appName = "copybook"

// Cache backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Backends lists every supported cache backend.
var Backends = []string{BackendFile, BackendRedis, BackendMemory, BackendNone}

// Config is the root of the configuration file.
type Config struct {
	Template grid.TemplateConfig `toml:"template"`
	Cache    CacheConfig         `toml:"cache"`
	Strokes  StrokesConfig       `toml:"strokes"`
	Poetry   PoetryConfig        `toml:"poetry"`
	Server   ServerConfig        `toml:"server"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Backend       string        `toml:"backend"`
	Dir           string        `toml:"dir"` // file backend; empty uses DefaultCacheDir
	RedisAddr     string        `toml:"redis_addr"`
	RedisPassword string        `toml:"redis_password"`
	RedisDB       int           `toml:"redis_db"`
	Prefix        string        `toml:"prefix"` // redis key prefix
	TTL           time.Duration `toml:"ttl"`    // lifetime of fetched stroke documents
}

// StrokesConfig configures the stroke-data source.
type StrokesConfig struct {
	BaseURL     string        `toml:"base_url"`
	Concurrency int           `toml:"concurrency"`
	Timeout     time.Duration `toml:"timeout"`
}

// PoetryConfig selects the poem library. An empty MongoURI uses the
// built-in poems.
type PoetryConfig struct {
	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Template: grid.DefaultTemplate(),
		Cache: CacheConfig{
			Backend: BackendFile,
			TTL:     cache.TTLStrokes,
		},
		Strokes: StrokesConfig{
			BaseURL:     hanzi.DefaultBaseURL,
			Concurrency: strokes.DefaultConcurrency,
			Timeout:     10 * time.Second,
		},
		Poetry: PoetryConfig{
			MongoDatabase:   poetry.DefaultMongoDatabase,
			MongoCollection: poetry.DefaultMongoCollection,
		},
		Server: ServerConfig{Addr: ":8080"},
	}
}

// DefaultPath returns the default configuration file location.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/copybook or ~/.cache/copybook.
func DefaultCacheDir() (string, error) {
	if xdg := os.Getenv("XDG_CACHE_HOME"); xdg != "" {
		return filepath.Join(xdg, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the configuration at path over [Default]. With an empty path
// it reads [DefaultPath] and returns defaults if that file does not exist.
// An explicit path must exist. Unknown keys are rejected.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "load config %s", path)
	}
	return finish(cfg, md, path)
}

// Parse decodes TOML text over [Default].
func Parse(text string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(text, &cfg)
	if err != nil {
		return Config{}, errs.Wrap(errs.ErrCodeInvalidConfig, err, "parse config")
	}
	return finish(cfg, md, "config")
}

func finish(cfg Config, md toml.MetaData, source string) (Config, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, errs.New(errs.ErrCodeInvalidConfig, "%s: unknown keys: %s", source, strings.Join(keys, ", "))
	}
	cfg.Template.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Template.Validate(); err != nil {
		return err
	}
	if !slices.Contains(Backends, c.Cache.Backend) {
		return errs.New(errs.ErrCodeInvalidConfig, "unknown cache backend %q (want file, redis, memory or none)", c.Cache.Backend)
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisAddr == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	if c.Strokes.Concurrency < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "strokes.concurrency must not be negative, got %d", c.Strokes.Concurrency)
	}
	if c.Strokes.Timeout < 0 {
		return errs.New(errs.ErrCodeInvalidConfig, "strokes.timeout must not be negative")
	}
	if c.Server.Addr == "" {
		return errs.New(errs.ErrCodeInvalidConfig, "server.addr is required")
	}
	return nil
}
