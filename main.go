// Package main is the entry point for the drumtake application.
package main

import (
	"github.com/samber/lo"

	"github.com/drumtake-cli/drumtake/cmd"
	"github.com/drumtake-cli/drumtake/config"
	"github.com/drumtake-cli/drumtake/internal/cache"
	"github.com/drumtake-cli/drumtake/log"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	// Background cleanup of expired search result caches.
	go cache.CollectGarbage()

	cmd.Execute()
}
