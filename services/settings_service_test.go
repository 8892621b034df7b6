package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

func setupSettingsServiceMocks(t *testing.T) (*SettingsService, *mock_repositories.MockSettingsRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSettings := mock_repositories.NewMockSettingsRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		Settings: mockSettings,
		Audit:    mockAudit,
	}
	svc := NewSettingsService(repos)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	return svc, mockSettings, c
}

func TestGetSettings_Success(t *testing.T) {
	svc, mockSettings, _ := setupSettingsServiceMocks(t)

	mockSettings.EXPECT().GetSettings().Return(defaultSettings(), nil)

	settings, err := svc.GetSettings()
	assert.NoError(t, err)
	assert.Equal(t, "20", settings.LaborCostPerHour.String())
}

func TestUpdateSettings_PartialPatch(t *testing.T) {
	svc, mockSettings, c := setupSettingsServiceMocks(t)

	mockSettings.EXPECT().GetSettings().Return(defaultSettings(), nil)
	mockSettings.EXPECT().SaveSettings(gomock.Any()).DoAndReturn(func(s *models.PricingSettings) error {
		assert.Equal(t, "20", s.LaborCostPerHour.String())
		assert.Equal(t, "0.15", s.OverheadPct.String())
		return nil
	})

	overhead := decimal.RequireFromString("0.15")
	input := dto.UpdateSettingsInput{OverheadPct: &overhead}
	settings, err := svc.UpdateSettings(c, input)
	assert.NoError(t, err)
	assert.Equal(t, "0.15", settings.OverheadPct.String())
}
