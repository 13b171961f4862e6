// Package custom runs search providers written in Lua.
//
// A provider is a single .lua file in the sources directory that defines
//
//	function SearchVideos(query) return { { id = "...", title = "..." } } end
//
// Scripts get the mangal-lua-libs modules plus http_tls, an HTTP client with
// a browser TLS fingerprint.
package custom

import (
	"fmt"

	"github.com/AvaAvarai/IndimensionalYoutube/constant"
	"github.com/AvaAvarai/IndimensionalYoutube/internal/scraper"
	"github.com/AvaAvarai/IndimensionalYoutube/source"
	"github.com/AvaAvarai/IndimensionalYoutube/util"
	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"
)

// IDfromName derives the provider id of a script from its file stem.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs the script at path and checks that it can search.
func LoadSource(path string) (source.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	name := util.FileStem(path)

	if err := scraper.Load(state, path); err != nil {
		state.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	if state.GetGlobal(constant.SearchVideosFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.SearchVideosFn, name)
	}

	return newLuaSource(name, state), nil
}
