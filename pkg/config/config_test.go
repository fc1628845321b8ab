package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/copybook/pkg/cache"
	errs "github.com/matzehuels/copybook/pkg/errors"
	"github.com/matzehuels/copybook/pkg/grid"
	"github.com/matzehuels/copybook/pkg/integrations/hanzi"
	"github.com/matzehuels/copybook/pkg/poetry"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.Template != grid.DefaultTemplate() {
		t.Errorf("Template = %+v, want default template", cfg.Template)
	}
	if cfg.Cache.Backend != BackendFile {
		t.Errorf("Cache.Backend = %q, want %q", cfg.Cache.Backend, BackendFile)
	}
	if cfg.Strokes.BaseURL != hanzi.DefaultBaseURL {
		t.Errorf("Strokes.BaseURL = %q", cfg.Strokes.BaseURL)
	}
	if cfg.Poetry.MongoURI != "" {
		t.Error("default poetry library should be built in")
	}
}

func TestParse(t *testing.T) {
	cfg, err := Parse(`
[template]
column = 12
words_per_row = 3
words_per_col = 1
show_stroke_order_shadow = true
stroke_number = 4

[cache]
backend = "memory"
ttl = "48h"

[strokes]
base_url = "https://mirror.example/hanzi"
concurrency = 2
timeout = "5s"

[server]
addr = "127.0.0.1:9000"
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := grid.TemplateConfig{
		Column:                12,
		WordsPerRow:           3,
		WordsPerCol:           1,
		LayoutType:            grid.LayoutNormal,
		ShowStrokeOrderShadow: true,
		StrokeNumber:          4,
	}
	if cfg.Template != want {
		t.Errorf("Template = %+v, want %+v", cfg.Template, want)
	}
	if cfg.Cache.Backend != BackendMemory || cfg.Cache.TTL != 48*time.Hour {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if cfg.Strokes.Concurrency != 2 || cfg.Strokes.Timeout != 5*time.Second {
		t.Errorf("Strokes = %+v", cfg.Strokes)
	}
	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	if cfg.Poetry.MongoDatabase != poetry.DefaultMongoDatabase {
		t.Errorf("untouched sections should keep defaults, got %+v", cfg.Poetry)
	}
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"syntax", "[template\ncolumn = 1"},
		{"unknown key", "[template]\ncolums = 3"},
		{"unknown section", "[printer]\nenabled = true"},
		{"bad column", "[template]\ncolumn = -1"},
		{"too wide", "[template]\ncolumn = 99"},
		{"bad layout", `[template]` + "\n" + `layout_type = "diagonal"`},
		{"bad backend", `[cache]` + "\n" + `backend = "s3"`},
		{"redis without addr", `[cache]` + "\n" + `backend = "redis"`},
		{"negative concurrency", "[strokes]\nconcurrency = -1"},
		{"empty addr", `[server]` + "\n" + `addr = ""`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tt.name != "bad layout" && !errs.Is(err, errs.ErrCodeInvalidConfig) {
				t.Errorf("Parse() code = %s, want INVALID_CONFIG", errs.GetCode(err))
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() without a file = %v", err)
	}
	if cfg.Template != grid.DefaultTemplate() {
		t.Error("missing default file should yield defaults")
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if path != filepath.Join(dir, "copybook", "config.toml") {
		t.Errorf("DefaultPath() = %q", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[template]\ncolumn = 8\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Template.Column != 8 {
		t.Errorf("Template.Column = %d, want 8", cfg.Template.Column)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("explicit missing path should fail")
	}
}

func TestDefaultCacheDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", dir)
	got, err := DefaultCacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(dir, "copybook") {
		t.Errorf("DefaultCacheDir() = %q", got)
	}
}

func TestCacheOpen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	tests := []struct {
		cfg  CacheConfig
		want string
	}{
		{CacheConfig{Backend: BackendNone}, "*cache.NullCache"},
		{CacheConfig{Backend: BackendMemory}, "*cache.MemoryCache"},
		{CacheConfig{Backend: BackendFile, Dir: dir}, "*cache.FileCache"},
	}
	for _, tt := range tests {
		c, err := tt.cfg.Open(ctx)
		if err != nil {
			t.Fatalf("Open(%s) error: %v", tt.cfg.Backend, err)
		}
		switch c.(type) {
		case *cache.NullCache, *cache.MemoryCache, *cache.FileCache:
		default:
			t.Errorf("Open(%s) = %T, want %s", tt.cfg.Backend, c, tt.want)
		}
		c.Close()
	}

	if _, err := (CacheConfig{Backend: BackendRedis}).Open(ctx); err == nil {
		t.Error("redis without address should fail")
	}
}

func TestStrokesClient(t *testing.T) {
	c := StrokesConfig{BaseURL: "https://mirror.example/", Timeout: time.Second}.Client(nil, time.Hour)
	if c.BaseURL() != "https://mirror.example" {
		t.Errorf("BaseURL() = %q", c.BaseURL())
	}
	if d := (StrokesConfig{}).Client(nil, 0); d.BaseURL() != hanzi.DefaultBaseURL {
		t.Errorf("empty base URL should keep the default, got %q", d.BaseURL())
	}
}

func TestPoetryOpenBuiltin(t *testing.T) {
	lib, closeFn, err := PoetryConfig{}.Open(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	defer closeFn(context.Background())

	items, err := lib.List(context.Background())
	if err != nil || len(items) != 5 {
		t.Errorf("builtin List() = %d items, %v", len(items), err)
	}
}
