package main

import (
	"github.com/fatih/color"
)

func doImport(path string) error {
	svc := newServices()

	report, err := svc.Import.ImportPath(path)
	if err != nil {
		return err
	}

	color.Green("Import complete: ingredients %d created / %d updated, cocktails %d created / %d updated",
		report.IngredientsCreated, report.IngredientsUpdated,
		report.CocktailsCreated, report.CocktailsUpdated)
	return nil
}
