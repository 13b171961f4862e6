// Package scraper compiles Lua provider scripts and caches their bytecode.
package scraper

import (
	"fmt"
	"sync"
	"time"

	"github.com/AvaAvarai/IndimensionalYoutube/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

type compiled struct {
	proto   *lua.FunctionProto
	modTime time.Time
}

var bytecodeCache sync.Map

// Compile parses the script at path, reusing the cached prototype while the file is unchanged.
func Compile(path string) (*lua.FunctionProto, error) {
	info, err := filesystem.API().Stat(path)
	if err != nil {
		return nil, err
	}

	if cached, ok := bytecodeCache.Load(path); ok {
		if c := cached.(compiled); c.modTime.Equal(info.ModTime()) {
			return c.proto, nil
		}
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", path, err)
	}

	bytecodeCache.Store(path, compiled{proto: proto, modTime: info.ModTime()})
	return proto, nil
}

// Load runs the script at path inside L so its globals become available.
func Load(L *lua.LState, path string) error {
	proto, err := Compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}
