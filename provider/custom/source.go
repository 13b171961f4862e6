package custom

import (
	"fmt"
	"sync"

	lua "github.com/yuin/gopher-lua"
)

// luaSource wraps one Lua state. A state is not goroutine safe, so calls are serialized.
type luaSource struct {
	name string

	mu    sync.Mutex
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) *luaSource {
	return &luaSource{
		name:  name,
		state: state,
	}
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

// Close releases the Lua state.
func (s *luaSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
	return nil
}

// call runs a global function and checks the type of its single return value.
func (s *luaSource) call(fn string, want lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	if err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...); err != nil {
		return nil, err
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	if ret.Type() != want {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, ret.Type(), want)
	}

	return ret, nil
}
