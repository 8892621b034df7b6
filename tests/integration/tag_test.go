//go:build integration
// +build integration

package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adanilkinca/techcockbar/dto"
	"github.com/adanilkinca/techcockbar/models"
)

func TestTagListIncludesSeeded(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "GET", "/admin/tags", admin, nil, http.StatusOK)
	var tags []models.Tag
	decodeJSON(t, resp, &tags)

	names := make([]string, 0, len(tags))
	for _, tag := range tags {
		names = append(names, tag.Name)
	}
	require.Contains(t, names, "shot")
	require.Contains(t, names, "sweet")
}

func TestTagCRUD(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")

	resp := doRequest(t, "POST", "/admin/tags", admin, dto.TagInput{Name: "tiki"}, http.StatusCreated)
	var created models.Tag
	decodeJSON(t, resp, &created)
	require.NotZero(t, created.ID)
	require.Equal(t, "tiki", created.Name)

	resp = doRequest(t, "PUT", fmt.Sprintf("/admin/tags/%d", created.ID), admin,
		dto.TagInput{Name: "island"}, http.StatusOK)
	var renamed models.Tag
	decodeJSON(t, resp, &renamed)
	require.Equal(t, "island", renamed.Name)

	// Renaming onto an existing tag is a conflict.
	resp = doRequest(t, "PUT", fmt.Sprintf("/admin/tags/%d", created.ID), admin,
		dto.TagInput{Name: "sweet"}, http.StatusConflict)
	require.Contains(t, resp.Body.String(), "tag name already in use")

	doRequest(t, "DELETE", fmt.Sprintf("/admin/tags/%d", created.ID), admin, nil, http.StatusOK)
	doRequest(t, "DELETE", fmt.Sprintf("/admin/tags/%d", created.ID), admin, nil, http.StatusNotFound)
}

func TestTagCreateConflict(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	doRequest(t, "POST", "/admin/tags", admin, dto.TagInput{Name: "sweet"}, http.StatusConflict)
}

func TestTagNotFound(t *testing.T) {
	admin := loginUser(t, "admin", "admin123")
	doRequest(t, "PUT", "/admin/tags/999999", admin, dto.TagInput{Name: "ghost"}, http.StatusNotFound)
}
