package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// fingerprint: print the stored public key and its fingerprint.
func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the wallet public key and fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, err := appCtx.Wallet.PublicKey()
			if err != nil {
				return err
			}
			fp, err := appCtx.Wallet.Fingerprint()
			if err != nil {
				return err
			}
			fmt.Printf("Public key:  %s\nFingerprint: %s\n", pub, fp)
			return nil
		},
	}
}
