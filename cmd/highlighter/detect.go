package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/writing-highlighter/internal/detection"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Run the fallback detectors for a criterion against a writing sample",
	Long: "Detect classifies a criterion name (or a bare category such as \"adverbs\") and prints " +
		"the dictionary or auto-detected findings as JSON, including whether they would be withheld.",
	RunE: runDetect,
}

var (
	detectTextFile   string
	detectCategory   string
	detectConfigFile string
)

// detectOutput is the JSON written by the detect command
type detectOutput struct {
	Criterion string              `json:"criterion"`
	Category  detection.Category  `json:"category"`
	Source    string              `json:"source,omitempty"`
	Withheld  bool                `json:"withheld"`
	Findings  []detection.Finding `json:"findings"`
}

func init() {
	detectCmd.Flags().StringVarP(&detectTextFile, "text", "t", "", "Path to the writing sample (required)")
	detectCmd.Flags().StringVar(&detectCategory, "category", "", "Criterion name or category (required)")
	detectCmd.Flags().StringVar(&detectConfigFile, "config", "", "Path to a JSON config file")
	_ = detectCmd.MarkFlagRequired("text")
	_ = detectCmd.MarkFlagRequired("category")

	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(detectConfigFile)
	if err != nil {
		return err
	}
	detector, err := loadDetector(cfg.LexiconPath)
	if err != nil {
		return err
	}

	text, err := os.ReadFile(detectTextFile)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	fb := detector.Fallback(string(text), detectCategory, cfg.Policy())
	if fb.Category == detection.CategoryNone {
		return fmt.Errorf("no fallback category matches %q", detectCategory)
	}

	out := detectOutput{
		Criterion: detectCategory,
		Category:  fb.Category,
		Source:    string(fb.Source),
		Withheld:  fb.Withheld,
		Findings:  fb.Findings,
	}
	if out.Findings == nil {
		out.Findings = []detection.Finding{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
