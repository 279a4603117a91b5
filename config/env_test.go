package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvAsString(t *testing.T) {
	t.Setenv("TEST_STRING", "value")

	assert.Equal(t, "value", getEnvAsString("TEST_STRING", "fallback"))
	assert.Equal(t, "fallback", getEnvAsString("TEST_STRING_MISSING", "fallback"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	t.Setenv("TEST_INT_BAD", "forty-two")

	assert.Equal(t, 42, getEnvAsInt("TEST_INT", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_INT_BAD", 7))
	assert.Equal(t, 7, getEnvAsInt("TEST_INT_MISSING", 7))
}

func TestGetEnvAsTimeDuration(t *testing.T) {
	t.Setenv("TEST_DUR", "5m")
	t.Setenv("TEST_DUR_SECONDS", "30")
	t.Setenv("TEST_DUR_BAD", "soon")

	assert.Equal(t, 5*time.Minute, getEnvAsTimeDuration("TEST_DUR", time.Second))
	// bare integers are treated as seconds
	assert.Equal(t, 30*time.Second, getEnvAsTimeDuration("TEST_DUR_SECONDS", time.Second))
	assert.Equal(t, time.Second, getEnvAsTimeDuration("TEST_DUR_BAD", time.Second))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	t.Setenv("TEST_BOOL_BAD", "yep")

	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.False(t, getEnvAsBool("TEST_BOOL_BAD", false))
	assert.True(t, getEnvAsBool("TEST_BOOL_MISSING", true))
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv("TEST_SLICE", "a, b ,c,,")

	assert.Equal(t, []string{"a", "b", "c"}, getEnvAsSlice("TEST_SLICE", nil))
	assert.Equal(t, []string{"x"}, getEnvAsSlice("TEST_SLICE_MISSING", []string{"x"}))
}
