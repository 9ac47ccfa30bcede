package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"not found", NewNotFoundError("recipes.json"), "no recipe found at recipes.json"},
		{"corrupt with cause", NewCorruptError("recipes.json", cause), "recipe file recipes.json is corrupted: unexpected end of JSON input"},
		{"corrupt without cause", NewCorruptError("recipes.json", nil), "recipe file recipes.json is corrupted"},
		{"invalid no details", NewInvalidRecipeError("recipes.json"), "recipe file recipes.json is incomplete"},
		{
			"invalid with details",
			NewInvalidRecipeError("recipes.json", "/ingredients/0: missing properties: 'carbs'"),
			"recipe file recipes.json is incomplete:\n  - /ingredients/0: missing properties: 'carbs'",
		},
		{"configuration", NewConfigurationError("config", "failed to read", cause), "configuration error (config): failed to read: unexpected end of JSON input"},
		{"configuration without cause", NewConfigurationError("config", "bad", nil), "configuration error (config): bad"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestClassifiers(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("load: %w", NewNotFoundError("a.json"))
	corrupt := fmt.Errorf("load: %w", NewCorruptError("a.json", errors.New("bad")))
	invalid := fmt.Errorf("load: %w", NewInvalidRecipeError("a.json", "x"))
	plain := errors.New("permission denied")

	assert.True(t, IsNotFound(notFound))
	assert.False(t, IsNotFound(corrupt))

	assert.True(t, IsCorrupt(corrupt))
	assert.False(t, IsCorrupt(invalid))

	assert.True(t, IsInvalidRecipe(invalid))
	assert.False(t, IsInvalidRecipe(notFound))

	assert.False(t, IsNotFound(plain))
	assert.False(t, IsCorrupt(plain))
	assert.False(t, IsInvalidRecipe(plain))
}

func TestUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("root")
	assert.ErrorIs(t, NewCorruptError("a", cause), cause)
	assert.ErrorIs(t, NewConfigurationError("x", "y", cause), cause)
}
