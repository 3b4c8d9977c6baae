package version

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/drumtake-cli/drumtake/color"
	"github.com/drumtake-cli/drumtake/constant"
	"github.com/drumtake-cli/drumtake/icon"
	"github.com/drumtake-cli/drumtake/key"
	"github.com/drumtake-cli/drumtake/style"
	"github.com/drumtake-cli/drumtake/util"
)

// Notify prints a short terminal banner when a newer stable release exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err == nil {
		comp, err := Compare(version, constant.Version)
		if err == nil && comp <= 0 {
			return
		}
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint("https://github.com/drumtake-cli/drumtake/releases/tag/v"+version),
	)
}
