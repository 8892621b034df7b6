package main

import (
	"github.com/fatih/color"
)

func doSeed() error {
	svc := newServices()

	report, err := svc.Seed.EnsureSeedData()
	if err != nil {
		return err
	}

	if report.IngredientsCreated == 0 && report.CocktailsCreated == 0 {
		color.Yellow("Seed data already present, nothing to do")
		return nil
	}
	color.Green("Seed complete: %d ingredients, %d cocktails created", report.IngredientsCreated, report.CocktailsCreated)
	return nil
}
