package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ducat/internal/services/wallet"
)

// init: generate the wallet keypair and store it sealed under the passphrase.
func initCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate the wallet keypair and store it sealed",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			rec, err := appCtx.Wallet.Create(passphrase, force)
			if errors.Is(err, wallet.ErrWalletExists) {
				return fmt.Errorf("%w; re-run with --force to replace it", err)
			}
			if err != nil {
				return err
			}
			fmt.Printf("Wallet created.\nPublic key:  %s\nFingerprint: %s\n", rec.PublicKey, rec.Fingerprint)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing wallet")
	return cmd
}
