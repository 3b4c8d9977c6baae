// Package custom provides a bridge between the Go core and Lua-based track source scripts.
package custom

import (
	"fmt"

	libs "github.com/metafates/mangal-lua-libs"
	lua "github.com/yuin/gopher-lua"

	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/internal/scripts"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/video"
)

// IDfromName generates a canonical provider identifier for a given Lua script basename.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource initializes a new video.Source instance by executing and validating a Lua source script.
func LoadSource(path string) (video.Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state) // Injected from wrapper_tls.go

	// Load and compile the Lua script (using cache if available).
	err := scripts.PreCompileAndLoad(state, path)
	if err != nil {
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.SearchTracksFn).Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.SearchTracksFn, name)
	}

	return newLuaSource(name, state)
}
