// Package prompt provides the interactive terminal prompter.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/reglet-dev/recipebook/internal/application/dto"
	"github.com/reglet-dev/recipebook/internal/application/ports"
)

var _ ports.Prompter = (*HuhPrompter)(nil)

// HuhPrompter implements ports.Prompter with charmbracelet/huh forms.
type HuhPrompter struct {
	accessible bool
}

// NewHuhPrompter creates a prompter. Setting ACCESSIBLE in the environment
// switches huh to its screen-reader friendly mode.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{
		accessible: os.Getenv("ACCESSIBLE") != "",
	}
}

// IsInteractive checks if we're running in an interactive terminal.
// A character device such as /dev/null does not count.
func (p *HuhPrompter) IsInteractive() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// SelectAction shows the main menu.
func (p *HuhPrompter) SelectAction(ctx context.Context, recipeName string) (dto.MenuAction, error) {
	actions := dto.MenuActions()
	options := make([]huh.Option[dto.MenuAction], 0, len(actions))
	for _, action := range actions {
		options = append(options, huh.NewOption(action.Label(), action))
	}

	var action dto.MenuAction
	err := p.run(ctx, huh.NewSelect[dto.MenuAction]().
		Title(fmt.Sprintf("Recipe: %s", recipeName)).
		Options(options...).
		Value(&action))
	if err != nil {
		return "", err
	}
	return action, nil
}

// PromptIngredient asks for the ingredient name and its five numeric fields.
func (p *HuhPrompter) PromptIngredient(ctx context.Context) (dto.IngredientInput, error) {
	var name, quantity, calories, protein, fats, carbs string

	err := p.run(ctx,
		huh.NewInput().Title("Ingredient name").Value(&name).Validate(ValidateName),
		huh.NewInput().Title("Quantity (g)").Value(&quantity).Validate(ValidateNumber),
		huh.NewInput().Title("Calories").Value(&calories).Validate(ValidateNumber),
		huh.NewInput().Title("Protein (g)").Value(&protein).Validate(ValidateNumber),
		huh.NewInput().Title("Fats (g)").Value(&fats).Validate(ValidateNumber),
		huh.NewInput().Title("Carbs (g)").Value(&carbs).Validate(ValidateNumber),
	)
	if err != nil {
		return dto.IngredientInput{}, err
	}

	return BuildIngredientInput(name, quantity, calories, protein, fats, carbs)
}

// PromptRecipeName asks for the name of a new recipe.
func (p *HuhPrompter) PromptRecipeName(ctx context.Context) (string, error) {
	var name string
	err := p.run(ctx, huh.NewInput().Title("Recipe name").Value(&name).Validate(ValidateName))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(name), nil
}

// PromptPath asks for a file path with current pre-filled.
func (p *HuhPrompter) PromptPath(ctx context.Context, title, current string) (string, error) {
	path := current
	err := p.run(ctx, huh.NewInput().Title(title).Value(&path).Validate(ValidateName))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(path), nil
}

func (p *HuhPrompter) run(ctx context.Context, fields ...huh.Field) error {
	form := huh.NewForm(huh.NewGroup(fields...)).WithAccessible(p.accessible)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ports.ErrPromptAborted
		}
		return err
	}
	return nil
}

// ValidateName rejects blank input.
func ValidateName(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("a value is required")
	}
	return nil
}

// ValidateNumber rejects input that is not a finite decimal number.
func ValidateNumber(s string) error {
	_, err := ParseNumber(s)
	return err
}

// ParseNumber parses a finite decimal number, ignoring surrounding spaces.
func ParseNumber(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%q is not a finite number", strings.TrimSpace(s))
	}
	return v, nil
}

// BuildIngredientInput converts raw form answers into an IngredientInput.
func BuildIngredientInput(name, quantity, calories, protein, fats, carbs string) (dto.IngredientInput, error) {
	raw := []struct {
		field string
		value string
	}{
		{"quantity", quantity},
		{"calories", calories},
		{"protein", protein},
		{"fats", fats},
		{"carbs", carbs},
	}

	parsed := make([]float64, len(raw))
	for i, r := range raw {
		v, err := ParseNumber(r.value)
		if err != nil {
			return dto.IngredientInput{}, fmt.Errorf("invalid %s: %w", r.field, err)
		}
		parsed[i] = v
	}

	return dto.IngredientInput{
		Name:     strings.TrimSpace(name),
		Quantity: parsed[0],
		Calories: parsed[1],
		Protein:  parsed[2],
		Fats:     parsed[3],
		Carbs:    parsed[4],
	}, nil
}
