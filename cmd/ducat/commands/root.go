package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ducat/internal/app"
)

var (
	home       string
	passphrase string
	appCtx     *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "ducat",
		Short: "Prototype wallet CLI: hash, sign and verify",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".ducat")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.NewWire(app.Config{Home: home})
			return err
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.ducat)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keypair")

	root.AddCommand(initCmd(), fingerprintCmd(), hashCmd(), signCmd(), verifyCmd())
	return root.Execute()
}
