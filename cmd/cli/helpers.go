package main

import (
	"github.com/fatih/color"

	"github.com/adanilkinca/techcockbar/config"
	"github.com/adanilkinca/techcockbar/db"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/services"
)

func setup(arg1 string) {
	if arg1 == "version" || arg1 == "help" || arg1 == "" {
		return
	}
	config.LoadConfig()
	db.Init()
}

// newServices builds the service layer without a menu feed; websocket
// broadcasts are skipped when the hub is nil.
func newServices() *services.Services {
	return services.New(repositories.New(), nil)
}

func showHelp() {
	color.Yellow(`Available commands:

	help                      - show this help
	version                   - show CLI version
	migrate                   - runs all migrations up
	migrate down              - rolls back the last migration
	migrate reset             - drops everything and migrates back up
	migrate version           - prints the current schema version
	migrate force <n>         - marks the schema at version n to recover a dirty state
	createsuperuser           - interactively create a superuser account
	createsuperuser --noinput - read SUPERUSER_USERNAME / SUPERUSER_PASSWORD / SUPERUSER_EMAIL from the environment
	seed                      - insert the demo ingredients and cocktail if missing
	import <file.yaml>        - create or overwrite ingredients and cocktails from a YAML recipe file
	backfill-oz               - recompute stored ounce amounts for every recipe line

	`)
}
