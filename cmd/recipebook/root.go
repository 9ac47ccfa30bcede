package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/reglet-dev/recipebook/internal/infrastructure/system"
)

const (
	envPrefix      = "RECIPEBOOK"
	recipeFileKey  = "recipe_file"
	recipeFileEnv  = "RECIPEBOOK_FILE"
	recipeFileFlag = "file"
)

var (
	cfgFile    string
	recipeFile string
	verbose    bool
)

// rootCmd is the application entry point. Without a subcommand it starts
// the interactive session.
var rootCmd = &cobra.Command{
	Use:   "recipebook",
	Short: "Record recipes and compute their nutrition",
	Long: `Recipebook records recipes as lists of ingredients and totals their
calories, protein, fats and carbohydrates. One recipe is kept per file.

Run without a subcommand for the interactive menu, or use add, show and
check from scripts.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		setupLogging()
	},
	RunE:          withContainer(runInteractiveAction(&rootSessionOpts)),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.recipebook/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&recipeFile, recipeFileFlag, "f", "",
		"recipe file (default is recipes.json, env "+recipeFileEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag(recipeFileKey, rootCmd.PersistentFlags().Lookup(recipeFileFlag))
	_ = viper.BindEnv(recipeFileKey, recipeFileEnv)

	registerSessionFlags(rootCmd, &rootSessionOpts)
}

// initConfig loads configuration from the config file and environment.
// The same file is read by the system config loader for goals and output
// settings; viper only layers flags and environment over the scalars.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if path := system.DefaultConfigPath(); path != "" {
		viper.SetConfigFile(path)
	}
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetDefault(recipeFileKey, system.DefaultRecipeFile)

	if err := viper.ReadInConfig(); err == nil {
		slog.Debug("using config file", "file", viper.ConfigFileUsed())
	}
}

// resolveRecipeFile returns the recipe file chosen by flag, environment or
// config file, in that order.
func resolveRecipeFile() string {
	if path := viper.GetString(recipeFileKey); path != "" {
		return path
	}
	return system.DefaultRecipeFile
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	// Using TextHandler for CLI friendliness
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}
