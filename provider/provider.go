// Package provider manages built-in and custom track search sources.
package provider

import (
	"path/filepath"

	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/provider/custom"
	"github.com/drumtake-cli/drumtake/util"
	"github.com/drumtake-cli/drumtake/video"
	"github.com/drumtake-cli/drumtake/where"
)

// CustomProviderExtension is the file extension of custom Lua sources.
const CustomProviderExtension = ".lua"

// Provider represents a source provider.
type Provider struct {
	ID           string
	Name         string
	IsCustom     bool // Reserved for Lua-based providers.
	CreateSource func() (video.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

// Builtins returns built-in providers.
func Builtins() []*Provider {
	return []*Provider{
		{
			ID:   video.YtdlpSourceID,
			Name: "yt-dlp",
			CreateSource: func() (video.Source, error) {
				return video.NewYtdlp(), nil
			},
		},
	}
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, _ := CustomProviders()
	return providers
}

// All returns every known provider, built-ins first.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by name.
func Get(name string) (*Provider, bool) {
	for _, p := range All() {
		if p.Name == name || p.ID == name {
			return p, true
		}
	}
	return nil, false
}

// CustomProviders enumerates the Lua scripts in the sources dir.
func CustomProviders() ([]*Provider, error) {
	files, err := filesystem.API().ReadDir(where.Sources())
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if filepath.Ext(f.Name()) != CustomProviderExtension {
			continue
		}

		if f.Name() == "common.lua" {
			continue
		}

		path := filepath.Join(where.Sources(), f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:       custom.IDfromName(name),
			Name:     name,
			IsCustom: true,
			CreateSource: func() (video.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	return providers, nil
}
