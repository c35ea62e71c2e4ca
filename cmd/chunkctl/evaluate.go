package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Team-01-DAMG-7245/Automated-Financial-Concept-Note-Generator/internal/evaluator"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate <path>",
	Short: "Compare splitting strategies over a document",
	Long: `Run every splitting strategy over the same document and print
comparative chunk statistics: chunk counts, size distribution, token
averages, and fence integrity. Useful for tuning chunk sizes against a
new document corpus.`,
	Args: cobra.ExactArgs(1),
	RunE: runEvaluate,
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	spans, err := loadSpans(args[0])
	if err != nil {
		return err
	}
	if len(spans) == 0 {
		return fmt.Errorf("no content found in %s", args[0])
	}

	reports := evaluator.New(config()).Compare(spans)

	fmt.Printf("%-20s %7s %8s %8s %6s %6s %8s %8s %7s %10s\n",
		"strategy", "chunks", "mean", "median", "min", "max", "stddev", "tokens", "broken", "elapsed")
	for _, r := range reports {
		fmt.Printf("%-20s %7d %8.1f %8.1f %6d %6d %8.1f %8.1f %7d %10s\n",
			r.Strategy, r.Chunks, r.MeanSize, r.MedianSize, r.MinSize, r.MaxSize,
			r.StddevSize, r.MeanTokens, r.BrokenFences, r.Elapsed.Round(time.Microsecond))
	}

	return nil
}
