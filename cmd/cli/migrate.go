package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"

	"github.com/adanilkinca/techcockbar/db"
)

func doMigrate(arg2, arg3 string) error {
	switch arg2 {
	case "up":
		return db.Migrate()

	case "down":
		return db.MigrateDown()

	case "reset":
		return db.MigrateReset()

	case "force":
		if arg3 == "" {
			return fmt.Errorf("force requires a version number")
		}
		v, err := strconv.Atoi(arg3)
		if err != nil {
			return fmt.Errorf("invalid version %q", arg3)
		}
		return db.MigrateForce(v)

	case "version":
		v, dirty, err := db.MigrationVersion()
		if err != nil {
			return err
		}
		if dirty {
			color.Yellow("Schema version: %d (dirty)", v)
		} else {
			color.Green("Schema version: %d", v)
		}
		return nil

	default:
		return fmt.Errorf("unknown migrate subcommand %q", arg2)
	}
}
