// Package cache is a small TTL file cache for HTTP bodies requested by Lua providers.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
)

// TTL is how long an entry stays valid.
const TTL = 6 * time.Hour

func dir() string {
	path := filepath.Join(where.Cache(), "http")
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// GenerateKey derives a file name from a request identity.
func GenerateKey(parts ...string) string {
	normalized := strings.ToLower(strings.Join(parts, "\x00"))
	hash := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(hash[:])
}

// Read decodes the entry stored under key into target.
// It reports false for missing, expired or corrupt entries.
func Read(key string, target any) bool {
	path := filepath.Join(dir(), key)

	info, err := filesystem.API().Stat(path)
	if err != nil || time.Since(info.ModTime()) > TTL {
		return false
	}

	data, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	return json.Unmarshal(data, target) == nil
}

// Write stores data under key, replacing the previous entry atomically.
func Write(key string, data any) error {
	path := filepath.Join(dir(), key)
	tmp := path + ".tmp"

	encoded, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if err := filesystem.API().WriteFile(tmp, encoded, 0o644); err != nil {
		return err
	}

	return filesystem.API().Rename(tmp, path)
}

// CollectGarbage removes expired entries. It is meant to run in its own goroutine.
func CollectGarbage() {
	var removed int
	_ = filesystem.API().Walk(dir(), func(path string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > TTL {
			if filesystem.API().Remove(path) == nil {
				removed++
			}
		}
		return nil
	})

	if removed > 0 {
		log.Debugf("removed %d expired cache entries", removed)
	}
}
