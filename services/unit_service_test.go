package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
)

func TestListUnits_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUnit := mock_repositories.NewMockUnitRepo(ctrl)
	mockUnit.EXPECT().ListUnits().Return(ounceUnits(), nil)

	svc := NewUnitService(&repositories.Repos{Unit: mockUnit})
	units, err := svc.ListUnits()
	assert.NoError(t, err)
	assert.Len(t, units, 3)
}

func TestFactorsFromUnits(t *testing.T) {
	units := []models.Unit{
		{Name: "oz", ToOzFactor: decimal.NullDecimal{Decimal: decimal.NewFromInt(1), Valid: true}},
		{Name: "dash", ToOzFactor: decimal.NullDecimal{Decimal: decimal.RequireFromString("0.03"), Valid: true}},
		{Name: "leaf", NonVolumetric: true, OzEquivalent: decimal.NullDecimal{Decimal: decimal.Zero, Valid: true}},
		{Name: "piece", NonVolumetric: true},
		{Name: "mystery"},
	}

	factors := factorsFromUnits(units)

	assert.Equal(t, "1", factors["oz"].String())
	assert.Equal(t, "0.03", factors["dash"].String())
	assert.True(t, factors["leaf"].IsZero())
	assert.True(t, factors["piece"].IsZero())

	_, ok := factors["mystery"]
	assert.False(t, ok)
}
