package services

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

// --------------------- Setup ---------------------
func setupIngredientServiceMocks(t *testing.T) (*IngredientService, *mock_repositories.MockIngredientRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockIngredient := mock_repositories.NewMockIngredientRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		Ingredient: mockIngredient,
		Audit:      mockAudit,
	}
	svc := NewIngredientService(repos)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	return svc, mockIngredient, c
}

// --------------------- ListIngredients ---------------------
func TestListIngredients_Success(t *testing.T) {
	svc, mockIngredient, _ := setupIngredientServiceMocks(t)

	ingredients := []models.Ingredient{
		{ID: 1, Name: "Amaretto", ABVPercent: decimal.NewFromInt(28)},
		{ID: 2, Name: "Whipped Cream"},
	}
	mockIngredient.EXPECT().ListIngredients(repositories.IngredientQueryParams{}).Return(ingredients, nil)

	out, err := svc.ListIngredients(repositories.IngredientQueryParams{})
	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, "Amaretto", out[0].Name)
	assert.Nil(t, out[0].Allergens)
}

// --------------------- GetIngredient ---------------------
func TestGetIngredient_WithAllergens(t *testing.T) {
	svc, mockIngredient, _ := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(2)).Return(models.Ingredient{ID: 2, Name: "Irish Cream Liqueur"}, nil)
	mockIngredient.EXPECT().GetAllergens(uint(2)).Return([]string{"milk"}, nil)

	out, err := svc.GetIngredient(2)
	assert.NoError(t, err)
	assert.Equal(t, []string{"milk"}, out.Allergens)
}

func TestGetIngredient_NotFound(t *testing.T) {
	svc, mockIngredient, _ := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(9)).Return(models.Ingredient{}, gorm.ErrRecordNotFound)

	_, err := svc.GetIngredient(9)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

// --------------------- CreateIngredient ---------------------
func TestCreateIngredient_NameTaken(t *testing.T) {
	svc, mockIngredient, c := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByName("Amaretto").Return(models.Ingredient{ID: 1}, nil)

	input := dto.CreateIngredientInput{Name: "Amaretto"}
	_, err := svc.CreateIngredient(c, input)
	assert.ErrorIs(t, err, ErrIngredientNameTaken)
}

// --------------------- UpdateIngredient ---------------------
func TestUpdateIngredient_NotFound(t *testing.T) {
	svc, mockIngredient, c := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(9)).Return(models.Ingredient{}, gorm.ErrRecordNotFound)

	input := dto.UpdateIngredientInput{Name: ptrString("Anything")}
	_, err := svc.UpdateIngredient(c, 9, input)
	assert.ErrorIs(t, err, ErrIngredientNotFound)
}

func TestUpdateIngredient_RenameConflict(t *testing.T) {
	svc, mockIngredient, c := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(2)).Return(models.Ingredient{ID: 2, Name: "Irish Cream"}, nil)
	mockIngredient.EXPECT().GetIngredientByName("Amaretto").Return(models.Ingredient{ID: 1, Name: "Amaretto"}, nil)

	input := dto.UpdateIngredientInput{Name: ptrString("Amaretto")}
	_, err := svc.UpdateIngredient(c, 2, input)
	assert.ErrorIs(t, err, ErrIngredientNameTaken)
}

// --------------------- DeleteIngredient ---------------------
func TestDeleteIngredient_InUse(t *testing.T) {
	svc, mockIngredient, c := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(1)).Return(models.Ingredient{ID: 1, Name: "Amaretto"}, nil)
	mockIngredient.EXPECT().CountLinesUsing(uint(1)).Return(int64(2), nil)

	err := svc.DeleteIngredient(c, 1)
	assert.ErrorIs(t, err, ErrIngredientInUse)
}

func TestDeleteIngredient_Success(t *testing.T) {
	svc, mockIngredient, c := setupIngredientServiceMocks(t)

	mockIngredient.EXPECT().GetIngredientByID(uint(3)).Return(models.Ingredient{ID: 3, Name: "Orgeat"}, nil)
	mockIngredient.EXPECT().CountLinesUsing(uint(3)).Return(int64(0), nil)
	mockIngredient.EXPECT().DeleteIngredient(uint(3)).Return(nil)

	err := svc.DeleteIngredient(c, 3)
	assert.NoError(t, err)
}
