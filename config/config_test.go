package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigGinMode(t *testing.T) {
	t.Setenv("GIN_MODE", "debug")
	LoadConfig()
	assert.Equal(t, "debug", GinMode)
}

func TestLoadConfigGinModeDefaultsToRelease(t *testing.T) {
	// t.Setenv restores the original value afterwards; unset on top of it
	// so LoadConfig sees no key at all.
	t.Setenv("GIN_MODE", "debug")
	os.Unsetenv("GIN_MODE")
	LoadConfig()
	assert.Equal(t, "release", GinMode)
}
