package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// sign [message]: sign a message (positional, --file, or stdin) with the
// wallet keypair and print the signature as hex.
func signCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "sign [message]",
		Short: "Sign a message with the wallet keypair",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			msg, err := readMessage(cmd, args, file)
			if err != nil {
				return err
			}
			sig, err := appCtx.Wallet.Sign(passphrase, msg)
			if err != nil {
				return err
			}
			fmt.Println(sig)
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the message from a file")
	return cmd
}

// readMessage picks the message source: --file wins, then the positional
// argument, then stdin.
func readMessage(cmd *cobra.Command, args []string, file string) ([]byte, error) {
	if file != "" {
		return os.ReadFile(file)
	}
	if len(args) == 1 {
		return []byte(args[0]), nil
	}
	return io.ReadAll(cmd.InOrStdin())
}
