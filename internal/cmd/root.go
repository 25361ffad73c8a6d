package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pokelens/pokelens/internal/config"
	"github.com/pokelens/pokelens/internal/core/pokeapi"
	apperrors "github.com/pokelens/pokelens/internal/errors"
	"github.com/pokelens/pokelens/internal/observability"
)

const binaryName = "pokelens"

var (
	// Version info set by main package
	versionInfo struct {
		Version   string
		Commit    string
		BuildDate string
	}

	// rootCmd represents the lookup command; pokelens has no other verbs
	// beyond version.
	rootCmd = NewRootCommand(config.NewViper())
)

// SetVersionInfo is called by main package to set version information
func SetVersionInfo(version, commit, buildDate string) {
	versionInfo.Version = version
	versionInfo.Commit = commit
	versionInfo.BuildDate = buildDate
}

// Execute runs the root command. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

// NewRootCommand builds the pokelens command tree on top of v. Flags are
// bound into v so that flag > environment > default.
func NewRootCommand(v *viper.Viper) *cobra.Command {
	root := &cobra.Command{
		Use:   binaryName + " <pokemon>",
		Short: "Fetch details about a Pokémon from the PokéAPI",
		Long: `Fetch details about a Pokémon from the PokéAPI.

The name is lower-cased and looked up at the pokemon endpoint. The name,
base experience, height, weight and abilities are printed as JSON.

Examples:
  pokelens pikachu
  pokelens Charizard --output table
  POKELENS_API_TIMEOUT=5s pokelens ditto`,
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Arguments are already validated; later failures are not usage errors.
			cmd.SilenceUsage = true
			return initConfig(v)
		},
		RunE: runLookup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.BoolP("verbose", "v", false, "verbose output (sets log level to debug)")
	flags.Bool("strict-exit", false, "exit non-zero when the lookup fails")

	root.Flags().StringP("output", "o", "json", "Output format: json, yaml, table, markdown")
	root.Flags().String("base-url", "", "PokéAPI pokemon endpoint root (default "+pokeapi.DefaultBaseURL+")")
	root.Flags().Duration("timeout", 0, "HTTP timeout for the lookup (0 disables)")

	// Bind flags to viper
	_ = v.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = v.BindPFlag("strict_exit", flags.Lookup("strict-exit"))
	_ = v.BindPFlag("output.format", root.Flags().Lookup("output"))
	_ = v.BindPFlag("api.base_url", root.Flags().Lookup("base-url"))
	_ = v.BindPFlag("api.timeout", root.Flags().Lookup("timeout"))

	root.AddCommand(newVersionCmd())

	return root
}

// initConfig loads configuration and initializes the CLI logger.
func initConfig(v *viper.Viper) error {
	cfg, err := config.Load(v)
	if err != nil {
		return apperrors.NewConfigInvalidError(err.Error())
	}

	if err := observability.InitCLILogger(binaryName, cfg.Verbose); err != nil {
		return apperrors.NewConfigInvalidError(err.Error())
	}
	observability.CLILogger.Debug("Configuration loaded",
		zap.String("base_url", cfg.API.BaseURL),
		zap.Duration("timeout", cfg.API.Timeout),
		zap.String("output", cfg.Output.Format),
		zap.Bool("strict_exit", cfg.StrictExit))

	return nil
}
