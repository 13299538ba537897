package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterdesk/phonesim-go/internal/domain/achievements"
)

func newAchievementsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achievements",
		Short: "Achievement catalog tools",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the achievement catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%-22s %-10s %-10s %6s  %s\n", "ID", "CATEGORY", "TIER", "POINTS", "NAME")
			for _, a := range achievements.DefaultCatalog() {
				fmt.Printf("%-22s %-10s %-10s %6d  %s\n",
					a.ID, a.Category, a.Tier, a.Tier.Points(), a.Name)
			}
			return nil
		},
	})
	return cmd
}
