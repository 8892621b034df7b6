package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
)

// --------------------- Setup ---------------------
func setupMenuServiceMocks(t *testing.T) (*MenuService,
	*mock_repositories.MockSummaryRepo,
	*mock_repositories.MockCocktailRepo,
	*mock_repositories.MockUnitRepo) {

	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockSummary := mock_repositories.NewMockSummaryRepo(ctrl)
	mockCocktail := mock_repositories.NewMockCocktailRepo(ctrl)
	mockUnit := mock_repositories.NewMockUnitRepo(ctrl)

	repos := &repositories.Repos{
		Summary:  mockSummary,
		Cocktail: mockCocktail,
		Unit:     mockUnit,
	}
	return NewMenuService(repos), mockSummary, mockCocktail, mockUnit
}

// --------------------- ListMenu ---------------------
func TestListMenu_MapsRows(t *testing.T) {
	svc, mockSummary, _, _ := setupMenuServiceMocks(t)

	glass := "Shot"
	img := "https://cdn.example.com/blow_job.jpg"
	rows := []models.PublishedCocktail{
		{
			ID: 1, Slug: "blow-job", Name: "Blow Job", GlassType: &glass,
			TimeToMakeSec:  60,
			ABVPercent:     decimal.NullDecimal{Decimal: decimal.RequireFromString("22.5"), Valid: true},
			PriceSuggested: decimal.NullDecimal{Decimal: decimal.RequireFromString("0.5"), Valid: true},
			AllergensJSON:  datatypes.JSON([]byte(`["milk"]`)),
			ImageURL:       &img,
		},
		{ID: 2, Slug: "mojito", Name: "Mojito"},
	}
	mockSummary.EXPECT().ListPublished(repositories.PublicQueryParams{}).Return(rows, nil)

	menu, err := svc.ListMenu(repositories.PublicQueryParams{})
	assert.NoError(t, err)
	assert.Len(t, menu, 2)
	assert.Equal(t, "blow-job", menu[0].Slug)
	assert.Equal(t, []string{"milk"}, menu[0].Allergens)
	assert.Equal(t, "22.5", menu[0].ABVPercent.Decimal.String())
	assert.Equal(t, img, *menu[0].ImageURL)
	assert.Empty(t, menu[1].Allergens)

	// no picture of its own falls back to the placeholder
	assert.Equal(t, models.NoImageURL, *menu[1].ImageURL)
}

// --------------------- GetMenuItem ---------------------
func TestGetMenuItem_Success(t *testing.T) {
	svc, mockSummary, mockCocktail, mockUnit := setupMenuServiceMocks(t)

	row := models.PublishedCocktail{ID: 1, Slug: "blow-job", Name: "Blow Job"}
	mockSummary.EXPECT().GetPublishedBySlug("blow-job").Return(row, nil)
	mockCocktail.EXPECT().GetCocktailByID(uint(1)).Return(models.Cocktail{
		ID:     1,
		Slug:   "blow-job",
		Name:   "Blow Job",
		Status: models.CocktailStatusPublished,
		Tags:   []models.Tag{{ID: 1, Name: "shot"}, {ID: 2, Name: "sweet"}},
		Lines:  shotRecipe(),
	}, nil)
	mockUnit.EXPECT().ListUnits().Return(ounceUnits(), nil)

	item, err := svc.GetMenuItem("blow-job")
	assert.NoError(t, err)
	assert.Equal(t, []string{"shot", "sweet"}, item.Tags)
	assert.Len(t, item.Lines, 3)
	assert.Equal(t, "0.5", item.Lines[0].AmountOz.String())
	assert.True(t, item.Lines[2].IsOptional)
}

func TestGetMenuItem_NotFound(t *testing.T) {
	svc, mockSummary, _, _ := setupMenuServiceMocks(t)

	mockSummary.EXPECT().GetPublishedBySlug("nope").Return(models.PublishedCocktail{}, gorm.ErrRecordNotFound)

	_, err := svc.GetMenuItem("nope")
	assert.ErrorIs(t, err, ErrCocktailNotFound)
}

// --------------------- allergensFromJSON ---------------------
func TestAllergensFromJSON(t *testing.T) {
	assert.Equal(t, []string{}, allergensFromJSON(nil))
	assert.Equal(t, []string{}, allergensFromJSON(datatypes.JSON([]byte(`null`))))
	assert.Equal(t, []string{}, allergensFromJSON(datatypes.JSON([]byte(`{bad`))))
	assert.Equal(t, []string{"milk", "nuts"}, allergensFromJSON(datatypes.JSON([]byte(`["milk","nuts"]`))))
}
