package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/reglet-dev/recipebook/internal/application/dto"
	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/values"
)

// DefaultRecipeName names the recipe a session starts with when none is given.
const DefaultRecipeName = "My Recipe"

// SessionOptions configures an interactive session.
type SessionOptions struct {
	// Path is the recipe file offered by the save and load prompts
	Path string

	// RecipeName names the initial recipe
	RecipeName string

	// LoadOnStart loads Path before showing the menu
	LoadOnStart bool
}

// Session runs the interactive menu loop. It owns the single live recipe;
// loading or starting a new recipe replaces it.
type Session struct {
	id        values.SessionID
	service   *RecipeService
	prompter  ports.Prompter
	formatter ports.OutputFormatter
	out       io.Writer
	logger    *slog.Logger

	opts   SessionOptions
	path   string
	recipe *entities.Recipe
}

// NewSession creates a session. Notices are written to out and the
// nutrition view is rendered with formatter.
func NewSession(
	service *RecipeService,
	prompter ports.Prompter,
	formatter ports.OutputFormatter,
	out io.Writer,
	opts SessionOptions,
	logger *slog.Logger,
) *Session {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.RecipeName == "" {
		opts.RecipeName = DefaultRecipeName
	}

	id := values.NewSessionID()

	return &Session{
		id:        id,
		service:   service,
		prompter:  prompter,
		formatter: formatter,
		out:       out,
		logger:    logger.With("session_id", id.String()),
		opts:      opts,
		path:      opts.Path,
		recipe:    service.NewRecipe(opts.RecipeName),
	}
}

// ID returns the session identifier.
func (s *Session) ID() values.SessionID {
	return s.id
}

// Recipe returns the live recipe.
func (s *Session) Recipe() *entities.Recipe {
	return s.recipe
}

// Path returns the file the session last saved to or loaded from.
func (s *Session) Path() string {
	return s.path
}

// Run shows the menu until the user exits or aborts a menu prompt.
// Failures of individual actions are reported to the user and the loop
// continues; only prompter failures end it with an error.
func (s *Session) Run(ctx context.Context) error {
	s.logger.Debug("session started", "recipe", s.recipe.Name(), "path", s.path)

	if s.opts.LoadOnStart && s.path != "" {
		s.load(s.path)
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		action, err := s.prompter.SelectAction(ctx, s.recipe.Name())
		if errors.Is(err, ports.ErrPromptAborted) {
			s.logger.Debug("session aborted")
			return nil
		}
		if err != nil {
			return fmt.Errorf("menu failed: %w", err)
		}

		done, err := s.handle(ctx, action)
		if err != nil {
			return err
		}
		if done {
			s.logger.Debug("session finished")
			return nil
		}
	}
}

// handle runs one menu action and reports whether the session should end.
func (s *Session) handle(ctx context.Context, action dto.MenuAction) (bool, error) {
	s.logger.Debug("menu action", "action", string(action))

	switch action {
	case dto.ActionAddIngredient:
		return false, s.addIngredient(ctx)
	case dto.ActionViewNutrition:
		return false, s.viewNutrition()
	case dto.ActionListIngredients:
		s.listIngredients()
		return false, nil
	case dto.ActionSave:
		return false, s.save(ctx)
	case dto.ActionLoad:
		return false, s.promptLoad(ctx)
	case dto.ActionNew:
		return false, s.newRecipe(ctx)
	case dto.ActionExit:
		s.notice("Goodbye.")
		return true, nil
	default:
		s.notice("Unknown action: %s", action)
		return false, nil
	}
}

func (s *Session) addIngredient(ctx context.Context) error {
	in, err := s.prompter.PromptIngredient(ctx)
	if errors.Is(err, ports.ErrPromptAborted) {
		s.notice("Ingredient not added.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("ingredient prompt failed: %w", err)
	}

	s.service.AddIngredient(s.recipe, in)
	s.notice("Added %s to %s.", in.Name, s.recipe.Name())
	return nil
}

func (s *Session) viewNutrition() error {
	if s.recipe.IsEmpty() {
		s.notice("Add at least one ingredient before viewing nutrition.")
		return nil
	}

	if err := s.formatter.Format(s.service.Report(s.recipe, "")); err != nil {
		return fmt.Errorf("failed to render nutrition: %w", err)
	}
	return nil
}

func (s *Session) listIngredients() {
	if s.recipe.IsEmpty() {
		s.notice("No ingredients added yet.")
		return
	}

	s.notice("Ingredients in %s:", s.recipe.Name())
	for i, name := range s.recipe.IngredientNames() {
		s.notice("  %d. %s", i+1, name)
	}
}

func (s *Session) save(ctx context.Context) error {
	if s.recipe.IsEmpty() {
		s.notice("Add at least one ingredient before saving.")
		return nil
	}

	path, err := s.prompter.PromptPath(ctx, "Save recipe to", s.path)
	if errors.Is(err, ports.ErrPromptAborted) {
		s.notice("Recipe not saved.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("path prompt failed: %w", err)
	}

	if err := s.service.Save(s.recipe, path); err != nil {
		s.notice("Could not save recipe: %v", err)
		return nil
	}

	s.path = path
	s.notice("Saved %s to %s.", s.recipe.Name(), path)
	return nil
}

func (s *Session) promptLoad(ctx context.Context) error {
	path, err := s.prompter.PromptPath(ctx, "Load recipe from", s.path)
	if errors.Is(err, ports.ErrPromptAborted) {
		s.notice("Nothing loaded.")
		return nil
	}
	if err != nil {
		return fmt.Errorf("path prompt failed: %w", err)
	}

	s.load(path)
	return nil
}

// load replaces the live recipe with the one at path. On failure the
// current recipe is kept and the reason is reported.
func (s *Session) load(path string) {
	recipe, err := s.service.Load(path)
	switch {
	case err == nil:
		s.recipe = recipe
		s.path = path
		s.notice("Loaded %s (%d ingredients) from %s.", recipe.Name(), recipe.Len(), path)
	case apperrors.IsNotFound(err):
		s.notice("No recipe found at %s.", path)
	case apperrors.IsCorrupt(err):
		s.notice("Recipe file %s is corrupted.", path)
	case apperrors.IsInvalidRecipe(err):
		var invalid *apperrors.InvalidRecipeError
		errors.As(err, &invalid)
		s.notice("Recipe file %s is incomplete:", path)
		for _, detail := range invalid.Details {
			s.notice("  - %s", detail)
		}
	default:
		s.notice("Could not load recipe: %v", err)
	}
}

func (s *Session) newRecipe(ctx context.Context) error {
	name, err := s.prompter.PromptRecipeName(ctx)
	if errors.Is(err, ports.ErrPromptAborted) {
		s.notice("Keeping %s.", s.recipe.Name())
		return nil
	}
	if err != nil {
		return fmt.Errorf("name prompt failed: %w", err)
	}

	s.recipe = s.service.NewRecipe(name)
	s.notice("Started new recipe %s.", name)
	return nil
}

//nolint:errcheck // Best-effort terminal output
func (s *Session) notice(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format+"\n", args...)
}
