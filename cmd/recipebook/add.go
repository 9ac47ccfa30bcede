package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/recipebook/internal/application/dto"
)

// addOptions holds the flags of the add command.
type addOptions struct {
	CommonOptions

	RecipeName string
	Ingredient dto.IngredientInput
}

var addOpts = addOptions{CommonOptions: DefaultCommonOptions()}

// addCmd appends one ingredient to the recipe file.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an ingredient to the recipe file",
	Long: `Append one ingredient to the recipe stored in the recipe file and save it.
When the file does not exist yet, --recipe names the new recipe to start.
Without --recipe a missing file is an error, so a mistyped --file does not
create a new recipe.

Example:
  recipebook add --name Egg --quantity 50 --calories 70 --protein 6 --fats 5 --carbs 1`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		addOpts.Verbose = verbose
		return runAdd(cc, &addOpts, cmd.OutOrStdout())
	}),
}

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVar(&addOpts.Ingredient.Name, "name", "", "ingredient name (required)")
	addCmd.Flags().Float64Var(&addOpts.Ingredient.Quantity, "quantity", 0, "quantity in grams")
	addCmd.Flags().Float64Var(&addOpts.Ingredient.Calories, "calories", 0, "calories")
	addCmd.Flags().Float64Var(&addOpts.Ingredient.Protein, "protein", 0, "protein in grams")
	addCmd.Flags().Float64Var(&addOpts.Ingredient.Fats, "fats", 0, "fats in grams")
	addCmd.Flags().Float64Var(&addOpts.Ingredient.Carbs, "carbs", 0, "carbohydrates in grams")
	addCmd.Flags().StringVar(&addOpts.RecipeName, "recipe", "", "name for a new recipe when the file does not exist")
	_ = addCmd.MarkFlagRequired("name")

	addOpts.RegisterFlags(addCmd)
}

// runAdd implements the core logic for the add command.
//
//nolint:errcheck // Best-effort terminal output
func runAdd(cc *CommandContext, opts *addOptions, out io.Writer) error {
	if err := opts.ValidateFlags(); err != nil {
		return err
	}

	ingredient := opts.Ingredient
	ingredient.Name = strings.TrimSpace(ingredient.Name)
	if ingredient.Name == "" {
		return errors.New("--name must not be empty")
	}

	report, err := cc.Container.RecipeService().AddIngredientToFile(cc.Context, dto.AddIngredientRequest{
		Path:       cc.RecipeFile,
		RecipeName: strings.TrimSpace(opts.RecipeName),
		Ingredient: ingredient,
	})
	if err != nil {
		return fmt.Errorf("failed to add ingredient: %w", err)
	}

	if opts.Quiet {
		return nil
	}

	if opts.Format == "" {
		fmt.Fprintf(out, "Added %s to %s in %s (%d ingredients).\n",
			ingredient.Name, report.Name, cc.RecipeFile, len(report.Ingredients))
		return nil
	}

	formatter, err := cc.Container.NewFormatter(opts.Format, out)
	if err != nil {
		return err
	}
	return formatter.Format(report)
}
