package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath string
	verbose    bool
)

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "phonesim",
		Short: "PhoneSim - round engine for the phone-manufacturing business game",
		Long: `PhoneSim resolves rounds of a multiplayer phone-manufacturing simulation:
teams submit quarterly decisions, the engine resolves production, workforce,
finance, marketing and R&D, clears the shared market, advances events, and
evaluates achievements.

Examples:
  phonesim simulate --teams 4 --rounds 10 --seed 42
  phonesim logistics compare --from east-asia --to europe --weight 12000
  phonesim logistics recommend --from east-asia --to europe --weight 12000 --budget 50000 --deadline 14
  phonesim achievements list`,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Path to config file (default: ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Verbose output")

	rootCmd.AddCommand(newSimulateCommand())
	rootCmd.AddCommand(newLogisticsCommand())
	rootCmd.AddCommand(newAchievementsCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
