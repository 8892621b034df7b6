package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/adanilkinca/techcockbar/repositories"
	"github.com/adanilkinca/techcockbar/repositories/mock_repositories"
)

func TestImportPath_FileMissing(t *testing.T) {
	svc := NewImportService(&repositories.Repos{})

	_, err := svc.ImportPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestImportPath_BadYAML(t *testing.T) {
	svc := NewImportService(&repositories.Repos{})

	path := filepath.Join(t.TempDir(), "bad.yaml")
	assert.NoError(t, os.WriteFile(path, []byte("cocktails: [unclosed"), 0o644))

	_, err := svc.ImportPath(path)
	assert.ErrorContains(t, err, "parse")
}

func TestImport_InvalidCocktailStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	mockUnit := mock_repositories.NewMockUnitRepo(ctrl)
	mockSettings := mock_repositories.NewMockSettingsRepo(ctrl)
	mockUnit.EXPECT().ListUnits().Return(ounceUnits(), nil)
	mockSettings.EXPECT().GetSettings().Return(defaultSettings(), nil)

	svc := NewImportService(&repositories.Repos{Unit: mockUnit, Settings: mockSettings})

	file := ImportFile{
		Cocktails: []ImportCocktail{{Name: "Mystery", Status: "bogus"}},
	}
	_, err := svc.Import(file)
	assert.ErrorContains(t, err, "invalid status")
}

func TestOptString(t *testing.T) {
	assert.Nil(t, optString(""))
	assert.Equal(t, "x", *optString("x"))
}
