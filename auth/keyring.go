// Package auth stores the YouTube Data API key in the system keyring.
package auth

import (
	"errors"
	"os"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/zalando/go-keyring"
)

const (
	service = constant.App
	user    = "youtube-api-key"
)

// EnvAPIKey takes precedence over the keyring when set.
var EnvAPIKey = strings.ToUpper(constant.App) + "_YOUTUBE_API_KEY"

// ErrNotFound is returned when no key is stored anywhere.
var ErrNotFound = errors.New("youtube api key not found")

func SetAPIKey(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("api key is empty")
	}
	return keyring.Set(service, user, key)
}

// APIKey returns the key from the environment or the keyring.
func APIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(EnvAPIKey)); key != "" {
		return key, nil
	}

	key, err := keyring.Get(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotFound
	}
	return key, err
}

func DeleteAPIKey() error {
	err := keyring.Delete(service, user)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Mask hides all but the last four characters of key.
func Mask(key string) string {
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
