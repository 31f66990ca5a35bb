package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/crater/internal/cli/render"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// NewPredictCmd creates the predict command
func NewPredictCmd() *cobra.Command {
	var (
		deployer    string
		salt        string
		initCodeHex string
		check       bool
	)

	cmd := &cobra.Command{
		Use:   "predict [contract] [constructor-args...]",
		Short: "Predict a CREATE2 deployment address",
		Long: `Predict the address a contract will be deployed at through a CREATE2
factory, from the deployer address, a salt and the contract init code.

The init code comes either from a compiled Foundry artifact (pass the
contract name plus its constructor arguments) or from raw hex via
--init-code. The deployer falls back to the [profile.<name>.crater]
deployer in foundry.toml when --deployer is not given.`,
		Example: `  crater predict Counter 42 --salt 1
  crater predict Vault 0x262d41499c802decd532fd65d991e477a068e132 --salt 0x2a --check -n sepolia
  crater predict --init-code 0x6080604052 --deployer 0x4e59b44847b379578588920ca78fbf26c0b4956c`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.PredictAddressParams{
				Deployer:      deployer,
				Salt:          salt,
				InitCodeHex:   initCodeHex,
				CheckDeployed: check,
			}
			if len(args) > 0 {
				params.Artifact = args[0]
				params.CtorArgs = args[1:]
			}

			result, err := app.PredictAddress.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			renderer := render.NewPredictRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVar(&deployer, "deployer", "", "CREATE2 deployer (factory) address")
	cmd.Flags().StringVar(&salt, "salt", "0", "Salt, decimal or 0x-hex (canonicalized to 32 bytes)")
	cmd.Flags().StringVar(&initCodeHex, "init-code", "", "Raw init code hex instead of a contract artifact")
	cmd.Flags().BoolVar(&check, "check", false, "Also check the configured network for code at the address")

	return cmd
}
