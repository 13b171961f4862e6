// Package provider lists the available search providers and creates their sources.
package provider

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AvaAvarai/IndimensionalYoutube/auth"
	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	"github.com/AvaAvarai/IndimensionalYoutube/key"
	"github.com/AvaAvarai/IndimensionalYoutube/network"
	"github.com/AvaAvarai/IndimensionalYoutube/provider/custom"
	"github.com/AvaAvarai/IndimensionalYoutube/provider/youtube"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	"github.com/AvaAvarai/IndimensionalYoutube/where"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// CustomProviderExtension is the file extension of Lua providers.
const CustomProviderExtension = ".lua"

type Provider struct {
	ID           string
	Name         string
	IsCustom     bool
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns the providers compiled into the binary.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   youtube.ScraperID,
			Name: youtube.ScraperName,
			CreateSource: func() (source.Source, error) {
				return youtube.NewScraper(network.Default(), viper.GetInt(key.SearchLimit)), nil
			},
		},
		{
			ID:   youtube.APIID,
			Name: youtube.APIName,
			CreateSource: func() (source.Source, error) {
				apiKey, err := auth.APIKey()
				if err != nil {
					return nil, fmt.Errorf("%s: %w", youtube.APIName, youtube.ErrNoAPIKey)
				}
				return youtube.NewAPI(network.Client, apiKey, viper.GetInt(key.SearchLimit)), nil
			},
		},
	}
}

// Customs returns the Lua providers found in the sources directory.
func Customs() []*Provider {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil
	}

	return lo.FilterMap(files, func(f os.FileInfo, _ int) (*Provider, bool) {
		if f.IsDir() || filepath.Ext(f.Name()) != CustomProviderExtension {
			return nil, false
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		return &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		}, true
	})
}

// All returns builtins followed by customs.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by id or name, case-insensitively.
func Get(name string) (*Provider, bool) {
	name = strings.TrimSpace(name)
	return lo.Find(All(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// Default creates the source configured by search.provider.
func Default() (source.Source, error) {
	id := viper.GetString(key.SearchProvider)

	p, ok := Get(id)
	if !ok {
		ids := lo.Map(All(), func(p *Provider, _ int) string { return p.ID })
		return nil, fmt.Errorf("provider %q not found, available: %s", id, strings.Join(ids, ", "))
	}

	return p.CreateSource()
}
