package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"ducat/internal/crypto"
)

// verify <pubkey-hex> <signature-hex> [message]: check a detached signature.
// The message comes from the positional argument, --file, or stdin.
func verifyCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "verify <pubkey-hex> <signature-hex> [message]",
		Short: "Verify a detached signature against any public key",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", crypto.ErrMalformedPublicKey, err)
			}
			sig, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("%w: %v", crypto.ErrMalformedSignature, err)
			}
			msg, err := readMessage(cmd, args[2:], file)
			if err != nil {
				return err
			}
			if err := appCtx.Wallet.Verify(pub, msg, sig); err != nil {
				return err
			}
			fmt.Println("signature valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&file, "file", "", "read the message from a file")
	return cmd
}
