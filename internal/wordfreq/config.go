package wordfreq

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/xyproto/env/v2"
)

// Config controls which files are read and how words are counted and ranked.
type Config struct {
	// number of words to print
	Top uint64 `toml:"top"`
	// words with fewer runes are ignored
	MinLength uint64 `toml:"min_length"`
	Lowercase bool   `toml:"lowercase"`
	// file extensions read when walking a directory; empty means all files
	Extensions []string `toml:"extensions"`
}

func DefaultConfig() Config {
	return Config{
		Top:        10,
		MinLength:  1,
		Lowercase:  true,
		Extensions: []string{".txt", ".md"},
	}
}

// LoadConfig starts from DefaultConfig, applies the TOML file at path if path
// is non-empty, then applies WORDFREQ_* environment variables.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return cfg, errors.Wrapf(err, "read config %s", path)
		}
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func envUint(name string, def uint64) uint64 {
	n := env.Int(name, int(def))
	if n < 0 {
		return 0
	}
	return uint64(n)
}

func (cfg *Config) applyEnv() {
	if env.Has("WORDFREQ_TOP") {
		cfg.Top = envUint("WORDFREQ_TOP", cfg.Top)
	}
	if env.Has("WORDFREQ_MIN_LENGTH") {
		cfg.MinLength = envUint("WORDFREQ_MIN_LENGTH", cfg.MinLength)
	}
	if env.Has("WORDFREQ_LOWERCASE") {
		cfg.Lowercase = env.Bool("WORDFREQ_LOWERCASE")
	}
}

func (cfg Config) Validate() error {
	if cfg.Top == 0 {
		return errors.New("top must be at least 1")
	}
	return nil
}
