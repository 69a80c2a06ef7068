package cmd

import (
	"fmt"

	"github.com/KostasZigo/casgit/internal/objects"
	"github.com/KostasZigo/casgit/utils"
	"github.com/spf13/cobra"
)

var catFileCmd = &cobra.Command{
	Use:   "cat-file (-p | -t | -s) <hash>",
	Short: "Print the content, type or size of a stored object",
	Long: `Read an object from the objects folder by hash.

  -p  print the payload: raw bytes for a blob, one entry per line for a tree
  -t  print the object type (blob or tree)
  -s  print the payload size in bytes`,
	SilenceUsage: true,
	Args:         exactArgs(1, "hash"),
	RunE:         runCatFile,
}

var (
	prettyPrintFlag bool
	typeFlag        bool
	sizeFlag        bool
)

func init() {
	rootCmd.AddCommand(catFileCmd)

	catFileCmd.Flags().BoolVarP(&prettyPrintFlag, "pretty", "p", false, "Print the object payload")
	catFileCmd.Flags().BoolVarP(&typeFlag, "type", "t", false, "Print the object type")
	catFileCmd.Flags().BoolVarP(&sizeFlag, "size", "s", false, "Print the payload size")
	catFileCmd.MarkFlagsMutuallyExclusive("pretty", "type", "size")
	catFileCmd.MarkFlagsOneRequired("pretty", "type", "size")
}

// runCatFile reads one object and prints the requested view of it.
func runCatFile(cmd *cobra.Command, args []string) error {
	store, _, err := openStore(cmd)
	if err != nil {
		return err
	}

	kind, payload, err := objects.NewObjectReader(store).ReadObject(args[0])
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}

	out := cmd.OutOrStdout()
	switch {
	case typeFlag:
		fmt.Fprintln(out, kind)
	case sizeFlag:
		fmt.Fprintln(out, len(payload))
	case kind == utils.TreeObjectType:
		if len(payload) > 0 {
			fmt.Fprintf(out, "%s\n", payload)
		}
	default:
		// Blob bytes go out untouched, no trailing newline is added
		if _, err := out.Write(payload); err != nil {
			return fmt.Errorf("failed to write object content: %w", err)
		}
	}

	return nil
}
