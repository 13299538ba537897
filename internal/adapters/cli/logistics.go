package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quarterdesk/phonesim-go/internal/domain/logistics"
)

func newLogisticsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logistics",
		Short: "Shipping route tools",
	}
	cmd.AddCommand(newLogisticsCompareCommand())
	cmd.AddCommand(newLogisticsRecommendCommand())
	return cmd
}

func newLogisticsCompareCommand() *cobra.Command {
	var (
		from, to string
		weight   float64
		volume   float64
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare every shipping method on a route",
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := logistics.CompareOptions(logistics.DefaultCatalog(), from, to, weight, volume)
			if err != nil {
				return err
			}
			fmt.Printf("%-8s %12s %8s %8s %8s %8s\n", "METHOD", "COST", "DAYS", "COST-EFF", "TIME-EFF", "SCORE")
			for _, option := range options {
				fmt.Printf("%-8s %12.0f %8.1f %8.1f %8.1f %8.1f\n",
					option.Method.Name, option.TotalCost, option.TotalDays,
					option.CostEfficiency, option.TimeEfficiency, option.OverallScore)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Origin region")
	cmd.Flags().StringVar(&to, "to", "", "Destination region")
	cmd.Flags().Float64Var(&weight, "weight", 1000, "Shipment weight in kg")
	cmd.Flags().Float64Var(&volume, "volume", 0, "Shipment volume in m3")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func newLogisticsRecommendCommand() *cobra.Command {
	var (
		from, to string
		weight   float64
		volume   float64
		budget   float64
		deadline float64
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend a shipping method under budget and deadline constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			rec, err := logistics.Recommendations(logistics.DefaultCatalog(), from, to, weight, volume, budget, deadline)
			if err != nil {
				return err
			}
			fmt.Printf("Recommended: %s ($%.0f, %.1f days, %.0f%% on-time)\n",
				rec.Best.Method.Name, rec.Best.TotalCost, rec.Best.TotalDays,
				rec.Best.OnTimeProbability*100)
			for _, warning := range rec.Warnings {
				fmt.Println("  warning:", warning)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Origin region")
	cmd.Flags().StringVar(&to, "to", "", "Destination region")
	cmd.Flags().Float64Var(&weight, "weight", 1000, "Shipment weight in kg")
	cmd.Flags().Float64Var(&volume, "volume", 0, "Shipment volume in m3")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Budget in dollars")
	cmd.Flags().Float64Var(&deadline, "deadline", 0, "Deadline in days")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
