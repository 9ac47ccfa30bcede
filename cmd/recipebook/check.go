package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/recipebook/internal/application/dto"
)

// checkOptions holds the flags of the check command.
type checkOptions struct {
	CommonOptions

	Expressions []string
	GoalNames   []string
}

var checkOpts = checkOptions{CommonOptions: DefaultCommonOptions()}

// checkCmd evaluates nutrition goals against the recipe file.
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the recipe against nutrition goals",
	Long: `Evaluate goals against the recipe's nutrition totals. A goal is a boolean
expression over calories, protein, fats, carbs, quantity (total grams) and
ingredients (count).

Goals:
  --expect "calories < 500"           Ad-hoc goal (repeatable)
  --goal low-carb                     Goal defined under 'goals' in the config file

The command exits non-zero when any goal is missed or cannot be evaluated.`,
	Args: cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		checkOpts.Verbose = verbose
		return runCheck(cc, &checkOpts, cmd.OutOrStdout())
	}),
}

func init() {
	rootCmd.AddCommand(checkCmd)

	// StringArray keeps commas inside expressions intact
	checkCmd.Flags().StringArrayVar(&checkOpts.Expressions, "expect", nil, "goal expression (repeatable)")
	checkCmd.Flags().StringSliceVar(&checkOpts.GoalNames, "goal", nil, "configured goal names (comma-separated)")

	checkOpts.RegisterFlags(checkCmd)
}

// runCheck implements the core logic for the check command.
func runCheck(cc *CommandContext, opts *checkOptions, out io.Writer) error {
	if err := opts.ValidateFlags(); err != nil {
		return err
	}

	resp, err := cc.Container.RecipeService().CheckGoals(cc.Context, dto.CheckGoalsRequest{
		Path:        cc.RecipeFile,
		Expressions: opts.Expressions,
		GoalNames:   opts.GoalNames,
	})
	if err != nil {
		return fmt.Errorf("failed to check goals: %w", err)
	}

	if !opts.Quiet {
		formatter, err := cc.Container.NewFormatter(opts.Format, out)
		if err != nil {
			return err
		}
		if err := formatter.Format(resp.Report); err != nil {
			return err
		}
	}

	if resp.Status.IsFailure() {
		return fmt.Errorf("goals not met (status: %s)", resp.Status)
	}
	return nil
}
