// Package config wires viper to the registry of known fields and the
// config file on disk.
package config

import (
	"strings"

	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/filesystem"
	"github.com/drumtake-cli/drumtake/where"
)

// EnvKeyReplacer maps config key separators to their env-var form.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup loads defaults, env bindings and the TOML config file.
// A missing config file is not an error; defaults apply.
func Setup() error {
	viper.SetConfigName(constant.Drumtake)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Drumtake)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	err := viper.ReadInConfig()
	if _, notFound := err.(viper.ConfigFileNotFoundError); notFound {
		return nil
	}
	return err
}
