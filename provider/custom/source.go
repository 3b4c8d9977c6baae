// Package custom provides a bridge between the Go core and Lua-based track source scripts.
package custom

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// luaSource adapts a loaded Lua script to the video.Source interface.
type luaSource struct {
	name  string
	state *lua.LState
}

func newLuaSource(name string, state *lua.LState) (*luaSource, error) {
	return &luaSource{name: name, state: state}, nil
}

func (s *luaSource) Name() string {
	return s.name
}

func (s *luaSource) ID() string {
	return IDfromName(s.name)
}

// call invokes a global Lua function under protection and checks the
// type of its single return value.
func (s *luaSource) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	global := s.state.GetGlobal(fn)
	if global.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      global,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	ret := s.state.Get(-1)
	s.state.Pop(1)

	if ret.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, ret.Type(), retType)
	}
	return ret, nil
}
