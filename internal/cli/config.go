package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/npillmayer/vdoc/graphic"
	"github.com/npillmayer/vdoc/style"
	"github.com/npillmayer/vdoc/style/sheet"
	"github.com/npillmayer/vdoc/style/sheet/douceuradapter"
)

// Config holds the settings of a vdoc configuration file.
type Config struct {
	UndoLimit int               `toml:"undo_limit"`
	LogLevel  string            `toml:"log_level"`
	Styles    []string          `toml:"styles"`   // CSS style sheets, or SVG/HTML files with <style> elements
	Defaults  map[string]string `toml:"defaults"` // document default properties

	dir string // directory of the config file, base for relative paths
}

// loadConfig reads the configuration file at path. A missing file is not
// an error unless the path has been given explicitly.
func loadConfig(path string, explicit bool) (*Config, error) {
	conf := &Config{dir: "."}
	md, err := toml.DecodeFile(path, conf)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return conf, nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config %s: unknown key %s", path, undecoded[0])
	}
	if conf.UndoLimit < 0 {
		return nil, fmt.Errorf("config %s: negative undo limit %d", path, conf.UndoLimit)
	}
	conf.dir = filepath.Dir(path)
	return conf, nil
}

// level returns the log level configured, or fallback if none is set.
func (conf *Config) level(fallback log.Level) (log.Level, error) {
	if conf.LogLevel == "" {
		return fallback, nil
	}
	return log.ParseLevel(conf.LogLevel)
}

// registry creates a style registry holding the styles of the configured
// style sheets and the configured default properties.
func (conf *Config) registry(logger *log.Logger) (*style.Registry, error) {
	reg := style.NewRegistry()
	for _, path := range conf.Styles {
		if !filepath.IsAbs(path) {
			path = filepath.Join(conf.dir, path)
		}
		css, err := readStyleSheet(path)
		if err != nil {
			return nil, fmt.Errorf("style sheet %s: %w", path, err)
		}
		names, _, err := sheet.Register(reg, css)
		if err != nil {
			return nil, fmt.Errorf("style sheet %s: %w", path, err)
		}
		logger.Debug("registered style sheet", "path", path, "styles", names)
	}
	keys := make([]string, 0, len(conf.Defaults))
	for key := range conf.Defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		kvs, err := style.ExpandProperty(key, style.Property(conf.Defaults[key]))
		if err != nil {
			return nil, fmt.Errorf("config default %s: %w", key, err)
		}
		for _, kv := range kvs {
			if _, err := reg.SetDefault(kv.Key, kv.Value); err != nil {
				return nil, fmt.Errorf("config default %s: %w", key, err)
			}
		}
	}
	return reg, nil
}

// readStyleSheet reads a CSS file. SVG and HTML files contribute the
// rules of their embedded <style> elements.
func readStyleSheet(path string) (*douceuradapter.CSSStyles, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".svg", ".html", ".htm", ".xhtml":
		return douceuradapter.ParseDocument(f)
	}
	text, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return douceuradapter.Parse(string(text))
}

// documentOptions translates the configuration into options for new
// documents.
func (conf *Config) documentOptions(logger *log.Logger) ([]graphic.Option, error) {
	reg, err := conf.registry(logger)
	if err != nil {
		return nil, err
	}
	opts := []graphic.Option{graphic.WithRegistry(reg)}
	if conf.UndoLimit > 0 {
		opts = append(opts, graphic.WithUndoLimit(conf.UndoLimit))
	}
	return opts, nil
}

func withConfig(ctx context.Context, conf *Config) context.Context {
	return context.WithValue(ctx, configKey, conf)
}

func configFromContext(ctx context.Context) *Config {
	if conf, ok := ctx.Value(configKey).(*Config); ok {
		return conf
	}
	return &Config{dir: "."}
}
