package config

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestCreateLogger(t *testing.T) {
	assert.NotNil(t, CreateLogger(false, false, false))
	assert.NotNil(t, CreateLogger(true, false, false))
	assert.NotNil(t, CreateLogger(false, true, false))
	assert.NotNil(t, CreateLogger(false, true, true))
}
