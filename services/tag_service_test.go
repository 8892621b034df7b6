package services

import (
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

// --------------------- Setup ---------------------
func setupTagServiceMocks(t *testing.T) (*TagService, *mock_repositories.MockTagRepo, *gin.Context) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockTag := mock_repositories.NewMockTagRepo(ctrl)
	mockAudit := mock_repositories.NewMockAuditRepo(ctrl)
	repos := &repositories.Repos{
		Tag:   mockTag,
		Audit: mockAudit,
	}
	svc := NewTagService(repos)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	oldLog := utils.LogAuditWithConsole
	utils.LogAuditWithConsole = func(c *gin.Context, action, resourceType, resourceID string, oldData, newData interface{}, msg string, repos repositories.AuditRepo) {
	}
	t.Cleanup(func() { utils.LogAuditWithConsole = oldLog })

	return svc, mockTag, c
}

// --------------------- CreateTag ---------------------
func TestCreateTag_TrimsName(t *testing.T) {
	svc, mockTag, c := setupTagServiceMocks(t)

	mockTag.EXPECT().CreateTag(gomock.Any()).DoAndReturn(func(tag *models.Tag) error {
		assert.Equal(t, "party", tag.Name)
		tag.ID = 3
		return nil
	})

	tag, err := svc.CreateTag(c, dto.TagInput{Name: "  party  "})
	assert.NoError(t, err)
	assert.Equal(t, uint(3), tag.ID)
}

func TestCreateTag_DuplicateName(t *testing.T) {
	svc, mockTag, c := setupTagServiceMocks(t)

	mockTag.EXPECT().CreateTag(gomock.Any()).Return(errors.New("duplicate key value"))

	_, err := svc.CreateTag(c, dto.TagInput{Name: "party"})
	assert.ErrorIs(t, err, ErrTagNameTaken)
}

// --------------------- UpdateTag ---------------------
func TestUpdateTag_Success(t *testing.T) {
	svc, mockTag, c := setupTagServiceMocks(t)

	mockTag.EXPECT().GetTagByID(uint(1)).Return(models.Tag{ID: 1, Name: "sweet"}, nil)
	mockTag.EXPECT().SaveTag(gomock.Any()).Return(nil)

	tag, err := svc.UpdateTag(c, 1, dto.TagInput{Name: "sour"})
	assert.NoError(t, err)
	assert.Equal(t, "sour", tag.Name)
}

func TestUpdateTag_NotFound(t *testing.T) {
	svc, mockTag, c := setupTagServiceMocks(t)

	mockTag.EXPECT().GetTagByID(uint(9)).Return(models.Tag{}, gorm.ErrRecordNotFound)

	_, err := svc.UpdateTag(c, 9, dto.TagInput{Name: "sour"})
	assert.ErrorIs(t, err, ErrTagNotFound)
}

// --------------------- DeleteTag ---------------------
func TestDeleteTag_Success(t *testing.T) {
	svc, mockTag, c := setupTagServiceMocks(t)

	mockTag.EXPECT().GetTagByID(uint(1)).Return(models.Tag{ID: 1, Name: "sweet"}, nil)
	mockTag.EXPECT().DeleteTag(uint(1)).Return(nil)

	err := svc.DeleteTag(c, 1)
	assert.NoError(t, err)
}

// --------------------- resolveTags ---------------------
func TestResolveTags_DedupesAndTrims(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })
	mockTag := mock_repositories.NewMockTagRepo(ctrl)

	mockTag.EXPECT().GetOrCreateTag("Sweet").Return(models.Tag{ID: 1, Name: "Sweet"}, nil)
	mockTag.EXPECT().GetOrCreateTag("Party").Return(models.Tag{ID: 2, Name: "Party"}, nil)

	tags, err := resolveTags(mockTag, []string{" Sweet ", "sweet", "", "Party"})
	assert.NoError(t, err)
	assert.Len(t, tags, 2)
	assert.Equal(t, "Sweet", tags[0].Name)
	assert.Equal(t, "Party", tags[1].Name)
}
