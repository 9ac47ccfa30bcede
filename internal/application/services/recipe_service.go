// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/reglet-dev/recipebook/internal/application/dto"
	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/application/ports"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/services"
)

// RecipeService coordinates recipe edits, persistence and goal checks.
// It holds no current recipe; callers pass the recipe they work on.
type RecipeService struct {
	repo      ports.RecipeRepository
	evaluator *services.GoalEvaluator
	goals     map[string]string
	logger    *slog.Logger
}

// NewRecipeService creates a recipe service. goals maps configured goal
// names to expressions.
func NewRecipeService(
	repo ports.RecipeRepository,
	evaluator *services.GoalEvaluator,
	goals map[string]string,
	logger *slog.Logger,
) *RecipeService {
	if logger == nil {
		logger = slog.Default()
	}
	if goals == nil {
		goals = make(map[string]string)
	}

	return &RecipeService{
		repo:      repo,
		evaluator: evaluator,
		goals:     goals,
		logger:    logger,
	}
}

// NewRecipe starts an empty recipe.
func (s *RecipeService) NewRecipe(name string) *entities.Recipe {
	s.logger.Debug("new recipe", "name", name)
	return entities.NewRecipe(name)
}

// AddIngredient appends the ingredient described by in to recipe.
func (s *RecipeService) AddIngredient(recipe *entities.Recipe, in dto.IngredientInput) {
	recipe.AddIngredient(entities.NewIngredient(in.Name, in.Quantity, in.Calories, in.Protein, in.Fats, in.Carbs))
	s.logger.Debug("ingredient added", "recipe", recipe.Name(), "ingredient", in.Name, "count", recipe.Len())
}

// Report builds the display form of recipe.
func (s *RecipeService) Report(recipe *entities.Recipe, path string) *dto.RecipeReport {
	return dto.NewRecipeReport(recipe, path)
}

// Save writes recipe to path.
func (s *RecipeService) Save(recipe *entities.Recipe, path string) error {
	if err := s.repo.Save(recipe, path); err != nil {
		s.logger.Debug("save failed", "path", path, "error", err)
		return fmt.Errorf("failed to save recipe: %w", err)
	}
	s.logger.Info("recipe saved", "name", recipe.Name(), "path", path, "ingredients", recipe.Len())
	return nil
}

// Load reads the recipe stored at path. The repository's not-found, corrupt
// and invalid-recipe errors are passed through unwrapped.
func (s *RecipeService) Load(path string) (*entities.Recipe, error) {
	recipe, err := s.repo.Load(path)
	if err != nil {
		s.logger.Debug("load failed", "path", path, "error", err)
		return nil, err
	}
	s.logger.Info("recipe loaded", "name", recipe.Name(), "path", path, "ingredients", recipe.Len())
	return recipe, nil
}

// AddIngredientToFile loads the recipe at req.Path, or starts one named
// req.RecipeName when the file does not exist, appends the ingredient and
// saves it back.
func (s *RecipeService) AddIngredientToFile(ctx context.Context, req dto.AddIngredientRequest) (*dto.RecipeReport, error) {
	recipe, err := s.Load(req.Path)
	switch {
	case err == nil:
	case apperrors.IsNotFound(err):
		if req.RecipeName == "" {
			return nil, fmt.Errorf("%w; pass --recipe to start a new one", err)
		}
		recipe = s.NewRecipe(req.RecipeName)
	default:
		return nil, err
	}

	s.AddIngredient(recipe, req.Ingredient)

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.Save(recipe, req.Path); err != nil {
		return nil, err
	}

	return s.Report(recipe, req.Path), nil
}

// ResolveGoals combines configured goals referenced by name with ad-hoc
// expressions. Named goals come first in the order given.
func (s *RecipeService) ResolveGoals(names, expressions []string) ([]services.Goal, error) {
	goals := make([]services.Goal, 0, len(names)+len(expressions))

	for _, name := range names {
		expression, ok := s.goals[name]
		if !ok {
			return nil, fmt.Errorf("unknown goal %q (configured: %v)", name, s.goalNames())
		}
		goals = append(goals, services.Goal{Name: name, Expression: expression})
	}

	for i, expression := range expressions {
		goals = append(goals, services.Goal{Name: fmt.Sprintf("expect-%d", i+1), Expression: expression})
	}

	return goals, nil
}

// CheckGoals evaluates the requested goals against the recipe at req.Path.
func (s *RecipeService) CheckGoals(ctx context.Context, req dto.CheckGoalsRequest) (*dto.CheckGoalsResponse, error) {
	goals, err := s.ResolveGoals(req.GoalNames, req.Expressions)
	if err != nil {
		return nil, err
	}
	if len(goals) == 0 {
		return nil, errors.New("no goals to check; use --expect or --goal")
	}

	recipe, err := s.Load(req.Path)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	status, results := s.evaluator.Evaluate(recipe, goals)
	s.logger.Info("goals evaluated", "recipe", recipe.Name(), "goals", len(goals), "status", status)

	report := s.Report(recipe, req.Path)
	report.Goals = results

	return &dto.CheckGoalsResponse{
		Report: report,
		Status: status,
	}, nil
}

func (s *RecipeService) goalNames() []string {
	names := make([]string, 0, len(s.goals))
	for name := range s.goals {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
