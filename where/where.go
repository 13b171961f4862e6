// Package where resolves the directories and files the application reads and writes.
package where

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
var EnvConfigPath = strings.ToUpper(constant.App) + "_CONFIG_PATH"

func mkdir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config is the directory holding itube.toml, the word list, logs and Lua providers.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok && custom != "" {
		return mkdir(custom)
	}

	return mkdir(filepath.Join(lo.Must(os.UserConfigDir()), constant.App))
}

// Cache is the directory for downloaded word lists and version checks.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return mkdir(filepath.Join(base, constant.App))
}

func Logs() string {
	return mkdir(filepath.Join(Config(), "logs"))
}

// Sources is where custom Lua providers live.
func Sources() string {
	return mkdir(filepath.Join(Config(), "sources"))
}

// Wordlist is the default word list location.
func Wordlist() string {
	return filepath.Join(Config(), constant.WordlistFilename)
}

// Temp is a scratch directory, used for the mpv IPC socket among others.
func Temp() string {
	return mkdir(filepath.Join(os.TempDir(), constant.App))
}

// Keywords is the file of remembered keywords.
func Keywords() string {
	return filepath.Join(Cache(), "keywords.json")
}
