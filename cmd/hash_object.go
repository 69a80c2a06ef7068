package cmd

import (
	"fmt"
	"log/slog"

	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/spf13/cobra"
)

var hashObjectCmd = &cobra.Command{
	Use:   "hash-object <filepath>",
	Short: "Compute object hash and optionally create and store a blob from a file",
	Long: `Compute the object hash (SHA-1 hash) for a file's content.
Optionally write the resulting blob into the objects folder.

Examples:
  # Compute hash without storing
  casgit hash-object myfile.txt

  # Compute hash and store in .casgit/objects
  casgit hash-object -w myfile.txt`,
	SilenceUsage: true,
	Args:         exactArgs(1, "filepath"),
	RunE:         runHashObject,
}

var writeFlag bool

func init() {
	rootCmd.AddCommand(hashObjectCmd)

	hashObjectCmd.Flags().BoolVarP(&writeFlag, "write", "w", false, "Write the object into the objects folder")
}

// runHashObject computes hash and optionally stores blob object.
func runHashObject(cmd *cobra.Command, args []string) error {
	blob, err := objects.NewBlobFromFile(args[0])
	if err != nil {
		return err
	}

	if writeFlag {
		store, _, err := openStore(cmd)
		if err != nil {
			return err
		}

		if err := store.Store(blob); err != nil {
			return fmt.Errorf("failed to store object: %w", err)
		}
		slog.Debug("Stored blob", "hash", blob.Hash(), "size", blob.Size())
	}

	fmt.Fprintln(cmd.OutOrStdout(), blob.Hash())
	return nil
}
