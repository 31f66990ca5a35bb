package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/crater/internal/app"
	"github.com/trebuchet-org/crater/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "crater",
		Short: "Predict deterministic CREATE2 deployment addresses",
		Long: `Crater computes the address a contract will be deployed at through a
CREATE2 factory, before any transaction is sent, and can check whether
code already lives at that address on a configured network.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root; pure derivation works outside a project too
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				projectRoot = "."
			}

			v := config.SetupViper(projectRoot)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (from foundry.toml [rpc_endpoints])")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Foundry profile (defaults to 'default')")

	rootCmd.AddCommand(NewPredictCmd())
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewHashCmd())
	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	bindFlag(v, cmd.Flag("debug"), "debug")
	bindFlag(v, cmd.Flag("json"), "json")
	bindFlag(v, cmd.Flag("non-interactive"), "non_interactive")
	bindFlag(v, cmd.Flag("network"), "network")
	bindFlag(v, cmd.Flag("profile"), "profile")
}

func bindFlag(v *viper.Viper, f *pflag.Flag, key string) {
	if f != nil && f.Changed {
		v.Set(key, f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	a, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return a, nil
}
