// Package container provides dependency injection for the application.
package container

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/application/services"
	domainservices "github.com/reglet-dev/recipebook/internal/domain/services"
	"github.com/reglet-dev/recipebook/internal/infrastructure/output"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/codec"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/filesystem"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/sqlite"
	"github.com/reglet-dev/recipebook/internal/infrastructure/prompt"
	"github.com/reglet-dev/recipebook/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	formatters    ports.OutputFormatterFactory
	prompter      *prompt.HuhPrompter
	recipeService *services.RecipeService
	systemCfg     *system.Config
	logger        *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// SystemConfigPath overrides ~/.recipebook/config.yaml
	SystemConfigPath string
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}

	configPath := opts.SystemConfigPath
	if configPath == "" {
		configPath = system.DefaultConfigPath()
	}

	// Load system config; a missing file yields defaults, a broken one is fatal
	configLoader := system.NewConfigLoader()
	systemCfg, err := configLoader.LoadConfig(context.TODO(), configPath)
	if err != nil {
		return nil, apperrors.NewConfigurationError("system config", configPath, err)
	}
	opts.Logger.Debug("system config loaded", "path", configPath, "goals", len(systemCfg.Goals))

	// Persistence
	recipeCodec, err := codec.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recipe codec: %w", err)
	}
	repository := persistence.NewRouter(
		filesystem.NewRecipeRepository(recipeCodec),
		sqlite.NewRecipeRepository(),
	)

	// Domain services
	evaluator := domainservices.NewGoalEvaluator()

	// Application services
	recipeService := services.NewRecipeService(repository, evaluator, systemCfg.Goals, opts.Logger)

	return &Container{
		formatters:    output.NewFormatterFactory(),
		prompter:      prompt.NewHuhPrompter(),
		recipeService: recipeService,
		systemCfg:     systemCfg,
		logger:        opts.Logger,
	}, nil
}

// RecipeService returns the recipe use cases.
func (c *Container) RecipeService() *services.RecipeService {
	return c.recipeService
}

// Prompter returns the terminal prompter.
func (c *Container) Prompter() *prompt.HuhPrompter {
	return c.prompter
}

// Logger returns the application logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// NewFormatter creates a formatter for format writing to w, applying the
// configured color setting.
func (c *Container) NewFormatter(format string, w io.Writer) (ports.OutputFormatter, error) {
	if format == "" {
		format = c.systemCfg.Output.Format
	}
	return c.formatters.Create(format, w, ports.FormatterOptions{
		Indent: true,
		Color:  c.systemCfg.Output.ColorEnabled(),
	})
}

// NewSession creates an interactive session writing to out. Empty options
// fall back to the system config.
func (c *Container) NewSession(out io.Writer, opts services.SessionOptions) (*services.Session, error) {
	if opts.Path == "" {
		opts.Path = c.systemCfg.RecipeFile
	}
	if opts.RecipeName == "" {
		opts.RecipeName = c.systemCfg.DefaultRecipeName
	}

	formatter, err := c.NewFormatter("table", out)
	if err != nil {
		return nil, err
	}

	return services.NewSession(c.recipeService, c.prompter, formatter, out, opts, c.logger), nil
}
