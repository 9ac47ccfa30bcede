package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/recipebook/internal/infrastructure/container"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container  *container.Container
	Logger     *slog.Logger
	Context    context.Context
	RecipeFile string
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// withContainer wraps a command handler with container initialization.
// Handles common setup: config loading, logger creation, recipe file resolution.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		c, err := container.New(container.Options{
			SystemConfigPath: cfgFile,
			Logger:           slog.Default(),
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container:  c,
			Logger:     c.Logger(),
			Context:    ctx,
			RecipeFile: resolveRecipeFile(),
		}, cmd, args)
	}
}
