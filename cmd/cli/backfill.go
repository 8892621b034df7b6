package main

import (
	"github.com/fatih/color"
)

func doBackfillOz() error {
	svc := newServices()

	updated, err := svc.Cocktail.BackfillOunces()
	if err != nil {
		return err
	}

	if updated == 0 {
		color.Yellow("All recipe lines already up to date")
		return nil
	}
	color.Green("Backfill complete: %d lines updated", updated)
	return nil
}
