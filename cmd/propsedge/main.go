// Package main provides the PropsEdge analysis CLI: it runs the pricing and
// hit-rate pipelines over JSON snapshot files for offline analysis.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/propsedge/internal/analysis"
	"github.com/yourusername/propsedge/internal/config"
	"github.com/yourusername/propsedge/internal/logger"
	"github.com/yourusername/propsedge/internal/models"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	inputFile  string
	outputFile string
	appLogger  *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVarP(&inputFile, "input", "i", "", "Path to JSON snapshot input")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Path to write JSON output (default stdout)")

	hitratesCmd.Flags().StringVar(&statKey, "stat", "points", "Stat key for the active market")
	hitratesCmd.Flags().Float64Var(&lineValue, "line", 0, "Line to measure hits against")
	hitratesCmd.Flags().StringVar(&opponent, "opponent", "", "Opponent for the head-to-head window")
	hitratesCmd.Flags().StringVar(&filtersFile, "filters", "", "Path to a FilterSpec JSON file")

	rootCmd.AddCommand(opportunitiesCmd)
	rootCmd.AddCommand(hitratesCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "propsedge",
	Short: "Sportsbook odds comparison and hit-rate analysis",
	Long:  `Runs the PropsEdge computation pipelines over JSON snapshots: best-price/fair-price/edge analysis of book quotes, and filtered hit-rate statistics over player game logs.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := config.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded
		appLogger = logger.NewLogger(cfg.App.LogLevel)
		return nil
	},
}

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities",
	Short: "Price every market in a quote snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		var markets []analysis.MarketQuotes
		if err := readInput(&markets); err != nil {
			return err
		}

		pricer := analysis.NewPricer(cfg, appLogger)
		opportunities := make([]models.Opportunity, 0, len(markets))
		for _, market := range markets {
			if opp, ok := pricer.Price(market); ok {
				opportunities = append(opportunities, *opp)
			}
		}

		logger.WithPipeline(appLogger, "pricing").WithFields(logrus.Fields{
			"markets":       len(markets),
			"opportunities": len(opportunities),
		}).Info("Priced quote snapshot")

		return writeOutput(opportunities)
	},
}

var (
	statKey     string
	lineValue   float64
	opponent    string
	filtersFile string
)

var hitratesCmd = &cobra.Command{
	Use:   "hitrates",
	Short: "Compute hit-rate windows over a game-log snapshot",
	RunE: func(cmd *cobra.Command, args []string) error {
		var records []models.GameRecord
		if err := readInput(&records); err != nil {
			return err
		}

		var spec *models.FilterSpec
		if filtersFile != "" {
			spec = &models.FilterSpec{}
			data, err := os.ReadFile(filtersFile)
			if err != nil {
				return fmt.Errorf("failed to read filters file: %w", err)
			}
			if err := json.Unmarshal(data, spec); err != nil {
				return fmt.Errorf("failed to parse filters file: %w", err)
			}
			if err := spec.Validate(); err != nil {
				return err
			}
		}

		rater := analysis.NewHitRater(cfg, appLogger)
		result := rater.Compute(analysis.HitRateRequest{
			Version:  inputFile,
			Records:  records,
			Spec:     spec,
			Stat:     models.StatKey(statKey),
			Line:     lineValue,
			Opponent: opponent,
		})

		logger.WithPipeline(appLogger, "statistics").WithFields(logrus.Fields{
			"games":    len(records),
			"filtered": len(result.Filtered),
			"stat":     statKey,
			"line":     lineValue,
		}).Info("Computed hit rates")

		return writeOutput(result)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("propsedge %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}

func readInput(v interface{}) error {
	if inputFile == "" {
		return fmt.Errorf("--input is required")
	}
	data, err := os.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input snapshot: %w", err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse input snapshot: %w", err)
	}
	return nil
}

func writeOutput(v interface{}) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if outputFile == "" {
		fmt.Println(string(encoded))
		return nil
	}
	if err := os.WriteFile(outputFile, append(encoded, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}
