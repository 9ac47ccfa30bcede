package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/recipebook/internal/application/services"
)

// sessionOptions holds the flags of the interactive session.
type sessionOptions struct {
	RecipeName string
	Load       bool
}

var (
	rootSessionOpts        sessionOptions
	interactiveSessionOpts sessionOptions
)

// interactiveCmd runs the menu loop; it is also what the bare root command does.
var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i"},
	Short:   "Build a recipe from an interactive menu",
	Long: `Start the interactive menu: add ingredients, view nutrition totals, list
ingredients, and save or load the recipe file.

Press Ctrl-C at the menu to leave without saving.`,
	Args: cobra.NoArgs,
	RunE: withContainer(runInteractiveAction(&interactiveSessionOpts)),
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	registerSessionFlags(interactiveCmd, &interactiveSessionOpts)
}

func registerSessionFlags(cmd *cobra.Command, opts *sessionOptions) {
	cmd.Flags().StringVar(&opts.RecipeName, "recipe", "", "name of the initial recipe (default from config, else \"My Recipe\")")
	cmd.Flags().BoolVar(&opts.Load, "load", false, "load the recipe file before showing the menu")
}

// errNotInteractive is returned when stdin is not a terminal.
var errNotInteractive = errors.New("interactive mode needs a terminal; use 'recipebook add', 'show' or 'check' instead")

func runInteractiveAction(opts *sessionOptions) CommandHandler {
	return func(cc *CommandContext, cmd *cobra.Command, _ []string) error {
		if !cc.Container.Prompter().IsInteractive() {
			return errNotInteractive
		}

		session, err := cc.Container.NewSession(cmd.OutOrStdout(), services.SessionOptions{
			Path:        cc.RecipeFile,
			RecipeName:  opts.RecipeName,
			LoadOnStart: opts.Load,
		})
		if err != nil {
			return err
		}

		cc.Logger.Debug("starting session", "session_id", session.ID().String(), "file", cc.RecipeFile)

		if err := session.Run(cc.Context); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		return nil
	}
}
