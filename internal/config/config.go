// Package config loads runtime settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into Config
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config holds the defaults shared by the command line tool and the name directory
type Config struct {
	// Segmenter overrides the segmenter a corpus file declares when set
	Segmenter      string  `env:"RNG_SEGMENTER"`
	Algorithm      string  `env:"RNG_ALGORITHM" envDefault:"simple"`
	MaxLen         int     `env:"RNG_MAX_LEN" envDefault:"12"`
	Count          int     `env:"RNG_COUNT" envDefault:"5"`
	MinProbability float64 `env:"RNG_MIN_PROBABILITY" envDefault:"1e-8"`
	Smoothing      float64 `env:"RNG_SMOOTHING" envDefault:"0.01"`
	MaxAttempts    int     `env:"RNG_MAX_ATTEMPTS" envDefault:"200"`
	SegmentCache   int     `env:"RNG_SEGMENT_CACHE" envDefault:"4096"`

	LogLevel  string `env:"RNG_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"RNG_LOG_FORMAT" envDefault:"text"`

	LDAPListen string `env:"RNG_LDAP_LISTEN" envDefault:":10389"`
	LDAPBaseDN string `env:"RNG_LDAP_BASE_DN" envDefault:"dc=wyrdbound"`
	CorpusPath string `env:"RNG_CORPUS"`
}

var dotenvLoaded sync.Once

// Load reads the configuration. A missing .env file is not an error.
func Load() (Config, error) {
	dotenvLoaded.Do(func() {
		_ = godotenv.Load()
	})

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}
	return cfg, nil
}
