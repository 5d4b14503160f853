package tutorial

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/df-mc/rotatable/family"
	"github.com/pelletier/go-toml"
)

// UserConfig is the user configuration of the plugin. It may be serialised to TOML and converted to a Config by
// calling ToConfig.
type UserConfig struct {
	Log struct {
		// Level is the minimum level of messages logged, one of debug, info, warn and error.
		Level string
	}
	Random struct {
		// Seed is the seed used to pick orientations. Setting a seed makes rotations reproducible, which is mostly
		// useful for testing. If 0, a random seed is used.
		Seed int64
	}
	// Blocks holds the base blocks that should get a rotatable family.
	Blocks []BlockConfig
}

// BlockConfig describes a base block in the user configuration.
type BlockConfig struct {
	// Name is the name of the block, such as Lamp.
	Name string
	// Categories are the categories of the block. The first category is the namespace of the family.
	Categories []string
}

// DefaultConfig returns a configuration with the default values filled out.
func DefaultConfig() UserConfig {
	c := UserConfig{}
	c.Log.Level = "info"
	c.Blocks = []BlockConfig{{Name: "Lamp", Categories: []string{"tutorial"}}}
	return c
}

// LoadConfig reads the user configuration from the TOML file at path. If the file does not exist yet, it is created
// with the default configuration.
func LoadConfig(path string) (UserConfig, error) {
	c := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return c, errors.New("load config: path must not be empty")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return c, fmt.Errorf("read config: %w", err)
		}
		return c, c.Write(path)
	}
	if err := toml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// Write encodes uc as TOML and writes it to the file at path.
func (uc UserConfig) Write(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0777); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	data, err := toml.Marshal(uc)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Level parses the configured log level. An empty level is treated as info.
func (uc UserConfig) Level() (slog.Level, error) {
	var l slog.Level
	if strings.TrimSpace(uc.Log.Level) == "" {
		return slog.LevelInfo, nil
	}
	if err := l.UnmarshalText([]byte(strings.TrimSpace(uc.Log.Level))); err != nil {
		return slog.LevelInfo, fmt.Errorf("parse log level: %w", err)
	}
	return l, nil
}

// ToConfig converts uc to a Config. base is called for every configured block to produce the block in its default
// orientation. If log is non-nil, the Config logs through it at the level configured in uc. The Placer and
// Transformer of the Config returned are left for the host to fill out.
func ToConfig[B any](uc UserConfig, log *slog.Logger, base func(b BlockConfig) B) (Config[B], error) {
	level, err := uc.Level()
	if err != nil {
		return Config[B]{}, fmt.Errorf("convert config: %w", err)
	}
	if log != nil {
		log = slog.New(levelHandler{Handler: log.Handler(), min: level})
	}
	conf := Config[B]{Log: log, Seed: uc.Random.Seed}
	seen := make(map[family.ID]struct{}, len(uc.Blocks))
	for _, b := range uc.Blocks {
		def := family.Definition[B]{Name: b.Name, Categories: b.Categories, Base: base(b)}
		id, err := def.ID()
		if err != nil {
			return conf, fmt.Errorf("convert config: %w", err)
		}
		if _, ok := seen[id]; ok {
			if log != nil {
				log.Warn("Duplicate block in config, skipping.", "id", id)
			}
			continue
		}
		seen[id] = struct{}{}
		conf.Blocks = append(conf.Blocks, def)
	}
	return conf, nil
}

// levelHandler drops records below min before passing them on to the Handler it wraps.
type levelHandler struct {
	slog.Handler
	min slog.Level
}

// Enabled ...
func (h levelHandler) Enabled(ctx context.Context, l slog.Level) bool {
	return l >= h.min && h.Handler.Enabled(ctx, l)
}

// WithAttrs ...
func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{Handler: h.Handler.WithAttrs(attrs), min: h.min}
}

// WithGroup ...
func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{Handler: h.Handler.WithGroup(name), min: h.min}
}
