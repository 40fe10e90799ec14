package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"ducat/internal/crypto"
)

// hash [file]: print the BLAKE2b-512 digest of a file or stdin.
func hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [file]",
		Short: "Print the BLAKE2b-512 digest of a file or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var data []byte
			var err error
			if len(args) == 1 {
				data, err = os.ReadFile(args[0])
			} else {
				data, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}
			fmt.Println(crypto.Sum(data))
			return nil
		},
	}
}
