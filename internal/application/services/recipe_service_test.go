package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reglet-dev/recipebook/internal/application/dto"
	apperrors "github.com/reglet-dev/recipebook/internal/application/errors"
	"github.com/reglet-dev/recipebook/internal/domain/entities"
	"github.com/reglet-dev/recipebook/internal/domain/services"
	"github.com/reglet-dev/recipebook/internal/domain/values"
	"github.com/reglet-dev/recipebook/internal/infrastructure/persistence/memory"
)

// memoryRepository adds fault injection and a save counter to the
// in-memory repository.
type memoryRepository struct {
	*memory.RecipeRepository
	errs  map[string]error
	saves int
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		RecipeRepository: memory.NewRecipeRepository(),
		errs:             make(map[string]error),
	}
}

func (r *memoryRepository) Save(recipe *entities.Recipe, path string) error {
	if err := r.errs[path]; err != nil {
		return err
	}
	r.saves++
	return r.RecipeRepository.Save(recipe, path)
}

func (r *memoryRepository) Load(path string) (*entities.Recipe, error) {
	if err := r.errs[path]; err != nil {
		return nil, err
	}
	return r.RecipeRepository.Load(path)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(repo *memoryRepository, goals map[string]string) *RecipeService {
	return NewRecipeService(repo, services.NewGoalEvaluator(), goals, discardLogger())
}

var (
	eggInput   = dto.IngredientInput{Name: "Egg", Quantity: 50, Calories: 70, Protein: 6, Fats: 5, Carbs: 1}
	toastInput = dto.IngredientInput{Name: "Toast", Quantity: 30, Calories: 80, Protein: 3, Fats: 1, Carbs: 15}
)

func TestRecipeService_AddIngredient(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemoryRepository(), nil)
	recipe := svc.NewRecipe("Breakfast")

	svc.AddIngredient(recipe, eggInput)
	svc.AddIngredient(recipe, toastInput)

	assert.Equal(t, []string{"Egg", "Toast"}, recipe.IngredientNames())
	assert.Equal(t, values.Totals{Calories: 150, Protein: 9, Fats: 6, Carbs: 16}, recipe.CalculateNutrition())
}

func TestRecipeService_SaveAndLoad(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := newTestService(repo, nil)

	recipe := svc.NewRecipe("Breakfast")
	svc.AddIngredient(recipe, eggInput)
	require.NoError(t, svc.Save(recipe, "r.json"))

	loaded, err := svc.Load("r.json")
	require.NoError(t, err)
	assert.Equal(t, "Breakfast", loaded.Name())
	assert.Equal(t, []string{"Egg"}, loaded.IngredientNames())
}

func TestRecipeService_SaveWrapsError(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	repo.errs["r.json"] = errors.New("disk full")
	svc := newTestService(repo, nil)

	err := svc.Save(svc.NewRecipe("X"), "r.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save recipe")
	assert.Contains(t, err.Error(), "disk full")
}

func TestRecipeService_LoadPassesTypedErrors(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	repo.errs["bad.json"] = apperrors.NewCorruptError("bad.json", errors.New("unexpected EOF"))
	svc := newTestService(repo, nil)

	_, err := svc.Load("missing.json")
	assert.True(t, apperrors.IsNotFound(err))

	_, err = svc.Load("bad.json")
	assert.True(t, apperrors.IsCorrupt(err))
}

func TestRecipeService_AddIngredientToFile(t *testing.T) {
	t.Parallel()

	t.Run("creates recipe when file is missing", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryRepository()
		svc := newTestService(repo, nil)

		report, err := svc.AddIngredientToFile(context.Background(), dto.AddIngredientRequest{
			Path:       "r.json",
			RecipeName: "Breakfast",
			Ingredient: eggInput,
		})
		require.NoError(t, err)
		assert.Equal(t, "Breakfast", report.Name)
		assert.Equal(t, "r.json", report.Path)
		assert.Len(t, report.Ingredients, 1)
		assert.Equal(t, 1, repo.saves)
	})

	t.Run("appends to existing recipe", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryRepository()
		svc := newTestService(repo, nil)
		existing := svc.NewRecipe("Breakfast")
		svc.AddIngredient(existing, eggInput)
		require.NoError(t, svc.Save(existing, "r.json"))

		report, err := svc.AddIngredientToFile(context.Background(), dto.AddIngredientRequest{
			Path:       "r.json",
			RecipeName: "Ignored",
			Ingredient: toastInput,
		})
		require.NoError(t, err)
		assert.Equal(t, "Breakfast", report.Name)
		assert.Equal(t, 150.0, report.Totals.Calories)

		stored, err := repo.Load("r.json")
		require.NoError(t, err)
		assert.Equal(t, []string{"Egg", "Toast"}, stored.IngredientNames())
	})

	t.Run("missing file without recipe name", func(t *testing.T) {
		t.Parallel()
		svc := newTestService(newMemoryRepository(), nil)

		_, err := svc.AddIngredientToFile(context.Background(), dto.AddIngredientRequest{
			Path:       "r.json",
			Ingredient: eggInput,
		})
		require.Error(t, err)
		assert.True(t, apperrors.IsNotFound(err))
		assert.Contains(t, err.Error(), "--recipe")
	})

	t.Run("corrupt file is not overwritten", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryRepository()
		repo.errs["r.json"] = apperrors.NewCorruptError("r.json", errors.New("bad"))
		svc := newTestService(repo, nil)

		_, err := svc.AddIngredientToFile(context.Background(), dto.AddIngredientRequest{
			Path:       "r.json",
			RecipeName: "Breakfast",
			Ingredient: eggInput,
		})
		assert.True(t, apperrors.IsCorrupt(err))
		assert.Equal(t, 0, repo.saves)
	})

	t.Run("cancelled context skips save", func(t *testing.T) {
		t.Parallel()
		repo := newMemoryRepository()
		svc := newTestService(repo, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.AddIngredientToFile(ctx, dto.AddIngredientRequest{
			Path:       "r.json",
			RecipeName: "Breakfast",
			Ingredient: eggInput,
		})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 0, repo.saves)
	})
}

func TestRecipeService_ResolveGoals(t *testing.T) {
	t.Parallel()

	svc := newTestService(newMemoryRepository(), map[string]string{
		"low-carb": "carbs < 30",
		"filling":  "protein >= 20",
	})

	goals, err := svc.ResolveGoals([]string{"low-carb"}, []string{"calories < 500", "fats < 10"})
	require.NoError(t, err)
	assert.Equal(t, []services.Goal{
		{Name: "low-carb", Expression: "carbs < 30"},
		{Name: "expect-1", Expression: "calories < 500"},
		{Name: "expect-2", Expression: "fats < 10"},
	}, goals)

	_, err = svc.ResolveGoals([]string{"keto"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown goal "keto"`)
	assert.Contains(t, err.Error(), "[filling low-carb]")
}

func TestRecipeService_CheckGoals(t *testing.T) {
	t.Parallel()

	repo := newMemoryRepository()
	svc := newTestService(repo, map[string]string{"low-carb": "carbs < 10"})
	recipe := svc.NewRecipe("Breakfast")
	svc.AddIngredient(recipe, eggInput)
	svc.AddIngredient(recipe, toastInput)
	require.NoError(t, svc.Save(recipe, "r.json"))

	t.Run("all met", func(t *testing.T) {
		t.Parallel()
		resp, err := svc.CheckGoals(context.Background(), dto.CheckGoalsRequest{
			Path:        "r.json",
			Expressions: []string{"calories == 150", "ingredients == 2"},
		})
		require.NoError(t, err)
		assert.Equal(t, values.GoalMet, resp.Status)
		assert.Len(t, resp.Report.Goals, 2)
		assert.Equal(t, "Breakfast", resp.Report.Name)
	})

	t.Run("named goal missed", func(t *testing.T) {
		t.Parallel()
		resp, err := svc.CheckGoals(context.Background(), dto.CheckGoalsRequest{
			Path:      "r.json",
			GoalNames: []string{"low-carb"},
		})
		require.NoError(t, err)
		assert.Equal(t, values.GoalMissed, resp.Status)
		require.Len(t, resp.Report.Goals, 1)
		assert.Equal(t, values.GoalMissed, resp.Report.Goals[0].Status)
	})

	t.Run("no goals", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CheckGoals(context.Background(), dto.CheckGoalsRequest{Path: "r.json"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no goals")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := svc.CheckGoals(context.Background(), dto.CheckGoalsRequest{
			Path:        "other.json",
			Expressions: []string{"calories > 0"},
		})
		assert.True(t, apperrors.IsNotFound(err))
	})
}
