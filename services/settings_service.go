package services

import (
	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/pkg/drinks"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

type SettingsService struct {
	Repos *repositories.Repos
}

func NewSettingsService(repos *repositories.Repos) *SettingsService {
	return &SettingsService{Repos: repos}
}

func (s *SettingsService) GetSettings() (models.PricingSettings, error) {
	return s.Repos.Settings.GetSettings()
}

func (s *SettingsService) UpdateSettings(c *gin.Context, input dto.UpdateSettingsInput) (models.PricingSettings, error) {
	settings, err := s.Repos.Settings.GetSettings()
	if err != nil {
		return models.PricingSettings{}, err
	}
	oldSettings := settings

	if input.LaborCostPerHour != nil {
		settings.LaborCostPerHour = *input.LaborCostPerHour
	}
	if input.OverheadPct != nil {
		settings.OverheadPct = *input.OverheadPct
	}
	if input.PriceRoundIncrement != nil {
		settings.PriceRoundIncrement = *input.PriceRoundIncrement
	}

	if err := s.Repos.Settings.SaveSettings(&settings); err != nil {
		return models.PricingSettings{}, err
	}

	utils.LogAuditWithConsole(c, "update", "settings", "id=1", oldSettings, settings, "", s.Repos.Audit)
	return settings, nil
}

func drinksSettings(ps models.PricingSettings) drinks.Settings {
	return drinks.Settings{
		LaborCostPerHour:    ps.LaborCostPerHour,
		OverheadPct:         ps.OverheadPct,
		PriceRoundIncrement: ps.PriceRoundIncrement,
	}
}
