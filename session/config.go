package session

import (
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/picker"
	"github.com/AvaAvarai/IndimensionalYoutube/random"
	"github.com/AvaAvarai/IndimensionalYoutube/selector"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/time/rate"
)

// QueryConfigFromViper builds the initial query configuration from the loaded config.
func QueryConfigFromViper() selector.QueryConfig {
	cfg := selector.QueryConfig{
		CurrentGenre: mo.None[string](),
	}.WithGenres(viper.GetStringSlice(key.GenresList)).WithKeyword(viper.GetString(key.SearchKeyword))

	if viper.GetBool(key.GenresCycle) {
		cfg.Mode = selector.ModeGenreCycle
	}

	return cfg
}

// LimiterFromViper returns the failure retry limiter, or nil when pacing is disabled.
func LimiterFromViper() *rate.Limiter {
	interval := viper.GetInt(key.PlayerRetryIntervalMs)
	if interval <= 0 {
		return nil
	}

	burst := max(viper.GetInt(key.PlayerRetryBurst), 1)
	return rate.NewLimiter(rate.Every(time.Duration(interval)*time.Millisecond), burst)
}

// NewFromViper wires an engine for src with everything else taken from the loaded config.
func NewFromViper(src source.Source, words []string) (*Engine, error) {
	rng := random.New()

	return New(Options{
		Source:      src,
		Selector:    selector.New(rng, words),
		Picker:      picker.New(rng),
		Config:      QueryConfigFromViper(),
		MaxFailures: viper.GetInt(key.PlayerRetryMaxFailures),
		Limiter:     LimiterFromViper(),
	})
}
