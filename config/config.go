// Package config wires the defaults registry, environment variables and the TOML file into viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer maps config keys to environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, binds environment variables and reads the config file if present.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return Validate()
		}
		return err
	}

	return Validate()
}

// Validate checks values that would otherwise fail deep inside a shell.
func Validate() error {
	if intensity := viper.GetInt(key.ServerCRTIntensity); intensity < 0 || intensity > 100 {
		return fmt.Errorf("%s must be between 0 and 100, got %d", key.ServerCRTIntensity, intensity)
	}

	if viper.GetInt(key.PlayerRetryMaxFailures) < 0 {
		return fmt.Errorf("%s can not be negative", key.PlayerRetryMaxFailures)
	}

	if viper.GetInt(key.SearchLimit) <= 0 {
		return fmt.Errorf("%s must be positive", key.SearchLimit)
	}

	return nil
}
