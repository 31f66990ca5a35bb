package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trebuchet-org/crater/pkg/create2"
)

// NewHashCmd creates the hash command
func NewHashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash <init-code-hex>",
		Short: "Print the Keccak-256 hash of init code",
		Long: `Print the Keccak-256 hash of the given init code hex. Some factory
contracts take this hash instead of the full init code.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			initCode, err := create2.ParseHexBytes(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), create2.InitCodeHash(initCode).Hex())
			return nil
		},
	}
}
