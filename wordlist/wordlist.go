// Package wordlist loads the vocabulary used for free-mode queries.
package wordlist

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/internal/cache"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/log"
	"github.com/AvaAvarai/IndimensionalYoutube/network"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/metafates/gache"
	"github.com/spf13/viper"
)

// RemoteLifetime is how long a downloaded word list is reused.
const RemoteLifetime = 24 * time.Hour

// List is a loaded word list.
type List struct {
	Words []string
	// Location is the path or URL the words were read from.
	Location string
	// Degraded is set when the list could not be loaded and only the fallback term is available.
	Degraded bool
}

// Parse reads one term per line. Blank lines and lines starting with # are skipped.
func Parse(r io.Reader) ([]string, error) {
	var words []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}

	return words, scanner.Err()
}

// Load reads the word list at location, a local path or an http(s) URL.
// An empty location means dict.txt in the config directory.
// Failures never propagate; the list degrades to the fallback term instead.
func Load(ctx context.Context, location, fallback string) *List {
	if location == "" {
		location = where.Wordlist()
	}

	if strings.TrimSpace(fallback) == "" {
		fallback = constant.FallbackTerm
	}

	var (
		words []string
		err   error
	)

	if isRemote(location) {
		words, err = loadRemote(ctx, location)
	} else {
		words, err = loadLocal(location)
	}

	if err == nil && len(words) == 0 {
		err = errors.New("word list is empty")
	}

	if err != nil {
		log.Warnf("word list %s unavailable, falling back to %q: %s", location, fallback, err)
		return &List{
			Words:    []string{fallback},
			Location: location,
			Degraded: true,
		}
	}

	log.Infof("loaded %d words from %s", len(words), location)
	return &List{
		Words:    words,
		Location: location,
	}
}

// FromViper loads the list configured by search.wordlist and search.fallback_term.
func FromViper(ctx context.Context) *List {
	return Load(ctx, viper.GetString(key.SearchWordlist), viper.GetString(key.SearchFallbackTerm))
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}

func loadLocal(path string) ([]string, error) {
	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

func remoteCacher(url string) *gache.Cache[[]string] {
	return gache.New[[]string](&gache.Options{
		Path:       filepath.Join(where.Cache(), "wordlists", cache.GenerateKey(url)+".json"),
		Lifetime:   RemoteLifetime,
		FileSystem: &filesystem.GacheFs{},
	})
}

func loadRemote(ctx context.Context, url string) ([]string, error) {
	cacher := remoteCacher(url)

	if cached, expired, err := cacher.Get(); err == nil && !expired && len(cached) > 0 {
		return cached, nil
	}

	body, err := network.Get(ctx, network.Client, url)
	if err != nil {
		return nil, err
	}

	words, err := Parse(strings.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}

	if len(words) > 0 {
		if err := cacher.Set(words); err != nil {
			log.Warnf("could not cache word list %s: %s", url, err)
		}
	}

	return words, nil
}
