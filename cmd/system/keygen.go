package system

import (
	"fmt"

	"github.com/spf13/cobra"

	pasetotoken "github.com/sumit1004/neurolink_backend/pkg/paseto"
)

func NewKeygenCommand() *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate PASETO keys for the token manager",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch pasetotoken.Mode(mode) {
			case pasetotoken.ModeLocal:
				keys := pasetotoken.NewLocalKeys()
				fmt.Println("symmetric_key_hex:", keys.Symmetric.ExportHex())
			case pasetotoken.ModePublic:
				keys := pasetotoken.NewPublicKeys()
				fmt.Println("secret_key_hex:", keys.Secret.ExportHex())
				fmt.Println("public_key_hex:", keys.Public.ExportHex())
			default:
				return fmt.Errorf("unknown mode %q (use local|public)", mode)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", string(pasetotoken.ModeLocal), "Key mode: local (encrypted) or public (signed)")

	return cmd
}
