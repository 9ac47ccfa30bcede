package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/recipebook/internal/infrastructure/system"
	"github.com/reglet-dev/recipebook/internal/templates"
)

// initOptions holds the flags of the init command.
type initOptions struct {
	Path  string
	Force bool
}

var initOpts initOptions

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a commented config file with the default recipe file, output
settings and a few example goals.

The file goes to --config when given, else $HOME/.recipebook/config.yaml.`,
	Example: `  recipebook init
  recipebook init --config ./recipebook.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := initOpts
		opts.Path = cfgFile
		if opts.Path == "" {
			opts.Path = system.DefaultConfigPath()
		}
		return runInit(&opts, cmd.OutOrStdout())
	},
}

func init() {
	initCmd.Flags().BoolVar(&initOpts.Force, "force", false, "overwrite an existing config file")

	rootCmd.AddCommand(initCmd)
}

// runInit renders the starter config to opts.Path.
//
//nolint:errcheck // Best-effort terminal output
func runInit(opts *initOptions, out io.Writer) error {
	if opts.Path == "" {
		return errors.New("cannot determine config path; pass --config")
	}

	if _, err := os.Stat(opts.Path); err == nil && !opts.Force {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", opts.Path)
	}

	content, err := templates.RenderConfig(templates.DefaultConfigData())
	if err != nil {
		return err
	}

	if dir := filepath.Dir(opts.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	if err := os.WriteFile(opts.Path, content, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(out, "Wrote %s\n", opts.Path)
	return nil
}
