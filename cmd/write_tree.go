package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/spf13/cobra"
)

var writeTreeCmd = &cobra.Command{
	Use:   "write-tree [directory]",
	Short: "Store a directory hierarchy as tree objects and print the root tree hash",
	Long: `Walk a directory (the repository root by default), store every file as a blob
and every subdirectory as a tree, and print the hash of the top-level tree.
The .casgit directory is never included. Symlinks and special files are skipped.`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runWriteTree,
}

func init() {
	rootCmd.AddCommand(writeTreeCmd)
}

// runWriteTree builds the tree for the requested directory.
func runWriteTree(cmd *cobra.Command, args []string) error {
	store, repoPath, err := openStore(cmd)
	if err != nil {
		return err
	}

	dirPath := repoPath
	if len(args) > 0 {
		dirPath = args[0]
	}

	hash, err := objects.NewTreeBuilder(store).BuildTree(dirPath)
	if err != nil {
		return fmt.Errorf("failed to write tree: %w", err)
	}
	slog.Debug("Stored tree", "path", dirPath, "hash", hash)

	fmt.Fprintln(cmd.OutOrStdout(), hash)
	return nil
}
