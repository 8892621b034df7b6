package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/utils"
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrTagNameTaken = errors.New("tag name already in use")
)

type TagService struct {
	Repos *repositories.Repos
}

func NewTagService(repos *repositories.Repos) *TagService {
	return &TagService{Repos: repos}
}

func (s *TagService) ListTags() ([]models.Tag, error) {
	return s.Repos.Tag.ListTags()
}

func (s *TagService) CreateTag(c *gin.Context, input dto.TagInput) (models.Tag, error) {
	name := strings.TrimSpace(input.Name)
	tag := models.Tag{Name: name}
	if err := s.Repos.Tag.CreateTag(&tag); err != nil {
		return models.Tag{}, ErrTagNameTaken
	}

	utils.LogAuditWithConsole(c, "create", "tag", fmt.Sprintf("id=%d", tag.ID), nil, tag, "", s.Repos.Audit)
	return tag, nil
}

func (s *TagService) UpdateTag(c *gin.Context, id uint, input dto.TagInput) (models.Tag, error) {
	tag, err := s.Repos.Tag.GetTagByID(id)
	if err != nil {
		return models.Tag{}, ErrTagNotFound
	}
	oldTag := tag

	tag.Name = strings.TrimSpace(input.Name)
	if err := s.Repos.Tag.SaveTag(&tag); err != nil {
		return models.Tag{}, ErrTagNameTaken
	}

	utils.LogAuditWithConsole(c, "update", "tag", fmt.Sprintf("id=%d", tag.ID), oldTag, tag, "", s.Repos.Audit)
	return tag, nil
}

func (s *TagService) DeleteTag(c *gin.Context, id uint) error {
	tag, err := s.Repos.Tag.GetTagByID(id)
	if err != nil {
		return ErrTagNotFound
	}
	if err := s.Repos.Tag.DeleteTag(id); err != nil {
		return err
	}

	utils.LogAuditWithConsole(c, "delete", "tag", fmt.Sprintf("id=%d", id), tag, nil, "", s.Repos.Audit)
	return nil
}

// resolveTags turns a list of names into tag rows, creating the missing
// ones. Blank and duplicate names are dropped.
func resolveTags(repo repositories.TagRepo, names []string) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		trimmed := strings.TrimSpace(name)
		key := strings.ToLower(trimmed)
		if trimmed == "" || seen[key] {
			continue
		}
		seen[key] = true
		tag, err := repo.GetOrCreateTag(trimmed)
		if err != nil {
			return nil, err
		}
		tags = append(tags, tag)
	}
	return tags, nil
}
