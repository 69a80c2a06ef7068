package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/KostasZigo/casgit/internal/config"
	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/KostasZigo/casgit/internal/repository"
	"github.com/klauspost/compress/zlib"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// rootCmd defines the base command for the casgit CLI.
// Every subcommand registers under this root and runs exactly once per process.
var rootCmd = &cobra.Command{
	Use:   "casgit",
	Short: "A content-addressable object store for files and directory trees",
	Long: `casgit stores file contents and directory hierarchies as immutable,
SHA-1 addressed objects and reconstructs either from its hash alone.`,
	PersistentPreRunE: setupLogging,
}

func init() {
	addGlobalFlags(rootCmd)
}

// addGlobalFlags registers the flags every subcommand reads through config.Load.
func addGlobalFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().String(constants.RepoKey, "", "Repository root (default: discovered from the working directory)")
	cmd.PersistentFlags().BoolP(constants.VerboseKey, "v", false, "Enable debug logging")
	cmd.PersistentFlags().Int(constants.CompressionLevelKey, zlib.DefaultCompression, "zlib level used when writing objects (-2..9)")
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setupLogging installs the default slog handler on stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig merges flags of cmd with CASGIT_* environment variables.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return config.Load(v)
}

// openStore resolves the repository and returns an object store using the configured codec.
func openStore(cmd *cobra.Command) (*objects.ObjectStore, string, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, "", err
	}

	start := cfg.RepoPath
	if start == "" {
		start = "."
	}
	repoPath, err := repository.FindRepoRoot(start)
	if err != nil {
		return nil, "", err
	}

	codec, err := objects.NewCodec(cfg.CompressionLevel)
	if err != nil {
		return nil, "", err
	}

	slog.Debug("Using repository", "path", repoPath, "compression-level", codec.Level())

	return objects.NewObjectStoreWithFs(afero.NewOsFs(), repoPath, codec), repoPath, nil
}

// exactArgs validates command receives exactly n positional arguments described by what.
// Enables usage printing in case of error.
func exactArgs(n int, what string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument (%s), received %d", cmd.Name(), n, what, len(args))
		}
		return nil
	}
}

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}
