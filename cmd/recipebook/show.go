package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var showOpts = DefaultCommonOptions()

// showCmd prints the recipe file with its nutrition totals.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the recipe and its nutrition totals",
	Args:  cobra.NoArgs,
	RunE: withContainer(func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		showOpts.Verbose = verbose
		return runShow(cc, &showOpts, cmd.OutOrStdout())
	}),
}

func init() {
	rootCmd.AddCommand(showCmd)
	showOpts.RegisterFlags(showCmd)
}

// runShow implements the core logic for the show command.
func runShow(cc *CommandContext, opts *CommonOptions, out io.Writer) error {
	if err := opts.ValidateFlags(); err != nil {
		return err
	}

	svc := cc.Container.RecipeService()
	recipe, err := svc.Load(cc.RecipeFile)
	if err != nil {
		return fmt.Errorf("failed to load recipe: %w", err)
	}

	if opts.Quiet {
		return nil
	}

	formatter, err := cc.Container.NewFormatter(opts.Format, out)
	if err != nil {
		return err
	}
	return formatter.Format(svc.Report(recipe, cc.RecipeFile))
}
