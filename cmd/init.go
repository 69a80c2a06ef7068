package cmd

import (
	"fmt"

	"github.com/KostasZigo/casgit/internal/constants"
	"github.com/KostasZigo/casgit/internal/repository"
	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [directory]",
	Short: "Create an empty casgit repository",
	Long: `The 'init' command creates the .casgit directory with its objects and refs
subdirectories and a HEAD file. Every other command needs this skeleton.
If a repository already exists, the command will not overwrite existing data.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

// runInit executes repository initialization at specified or current directory.
func runInit(cmd *cobra.Command, args []string) error {
	dirPath := "."
	if len(args) > 0 {
		dirPath = args[0]
	}

	if err := repository.InitRepository(dirPath); err != nil {
		return fmt.Errorf("failed to initialize repository - %w", err)
	}

	cmd.Printf("Initialized empty casgit repository in %s\n", utils.BuildDirPath(dirPath, constants.Casgit))
	return nil
}
