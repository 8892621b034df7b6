package services

import (
	"github.com/shopspring/decimal"

	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
)

type UnitService struct {
	Repos *repositories.Repos
}

func NewUnitService(repos *repositories.Repos) *UnitService {
	return &UnitService{Repos: repos}
}

func (s *UnitService) ListUnits() ([]models.Unit, error) {
	return s.Repos.Unit.ListUnits()
}

// factorsFromUnits builds the ounce conversion table handed to the drinks
// package. Non-volumetric units convert by their ounce equivalent, which
// for garnish measures is zero.
func factorsFromUnits(units []models.Unit) map[string]decimal.Decimal {
	factors := make(map[string]decimal.Decimal, len(units))
	for _, u := range units {
		switch {
		case u.NonVolumetric:
			if u.OzEquivalent.Valid {
				factors[u.Name] = u.OzEquivalent.Decimal
			} else {
				factors[u.Name] = decimal.Zero
			}
		case u.ToOzFactor.Valid:
			factors[u.Name] = u.ToOzFactor.Decimal
		}
	}
	return factors
}
