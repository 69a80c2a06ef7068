package cmd

import (
	"fmt"
	"io"
	"path"

	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/spf13/cobra"
)

var lsTreeCmd = &cobra.Command{
	Use:   "ls-tree [-r] <hash>",
	Short: "List the entries of a tree object",
	Long: `Print one line per entry of a tree: "<hash> <type> <name>".
With -r, subtrees are expanded and names are printed as slash-separated paths.`,
	SilenceUsage: true,
	Args:         exactArgs(1, "hash"),
	RunE:         runLsTree,
}

var recursiveFlag bool

func init() {
	rootCmd.AddCommand(lsTreeCmd)

	lsTreeCmd.Flags().BoolVarP(&recursiveFlag, "recursive", "r", false, "Recurse into subtrees")
}

func runLsTree(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	return listTree(cmd.OutOrStdout(), objects.NewObjectReader(store), args[0], "")
}

// listTree prints the entries of hash, prefixing names with prefix.
func listTree(out io.Writer, reader *objects.ObjectReader, hash, prefix string) error {
	tree, err := reader.ReadTree(hash)
	if err != nil {
		return fmt.Errorf("failed to read tree: %w", err)
	}

	for _, entry := range tree.Entries() {
		name := path.Join(prefix, entry.Name())
		if recursiveFlag && entry.IsDirectory() {
			if err := listTree(out, reader, entry.Hash(), name); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintf(out, "%s %s %s\n", entry.Hash(), entry.Kind(), name)
	}

	return nil
}
