package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "blow-job", Slugify("Blow Job"))
	assert.Equal(t, "pina-colada", Slugify("Pina  Colada"))
	assert.Equal(t, "b-52", Slugify("B-52"))
	assert.Equal(t, "dark-n-stormy", Slugify("Dark 'n' Stormy"))
	assert.Equal(t, "item", Slugify("!!!"))
	assert.Equal(t, "item", Slugify(""))
}

func TestSlugifyTrimsLength(t *testing.T) {
	long := strings.Repeat("margarita ", 30)
	slug := Slugify(long)
	assert.LessOrEqual(t, len(slug), 140)
	assert.False(t, strings.HasSuffix(slug, "-"))
}
