package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/crater/internal/cli/render"
	"github.com/trebuchet-org/crater/internal/usecase"
)

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <address>",
		Short: "Check whether a contract is deployed at an address",
		Long: `Check whether non-empty contract code exists at the given address on
the configured network. Pairs with predict: derive first, check after
(or instead of) deploying.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckDeployment.Run(cmd.Context(), usecase.CheckDeploymentParams{
				Address: args[0],
			})
			if err != nil {
				return err
			}

			renderer := render.NewCheckRenderer(cmd.OutOrStdout(), app.Config.JSON)
			return renderer.Render(result)
		},
	}

	return cmd
}
