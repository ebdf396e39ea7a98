package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/writing-highlighter/internal/extraction"
	"github.com/jonathan/writing-highlighter/internal/ranking"
	"github.com/jonathan/writing-highlighter/internal/types"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Print the evidence candidates found in a justification",
	RunE:  runExtract,
}

var (
	extractJustification string
	extractTextFile      string
)

func init() {
	extractCmd.Flags().StringVarP(&extractJustification, "justification", "j", "", "Justification text (required)")
	extractCmd.Flags().StringVarP(&extractTextFile, "text", "t", "", "Writing sample; enables phrase matching")
	_ = extractCmd.MarkFlagRequired("justification")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	cands := extraction.Extract(extractJustification)

	if extractTextFile != "" {
		text, err := os.ReadFile(extractTextFile)
		if err != nil {
			return fmt.Errorf("failed to read text file: %w", err)
		}
		cands = append(cands, extraction.MatchPhrases(extractJustification, string(text))...)
		ranking.Order(cands)
	}
	if cands == nil {
		cands = []types.EvidenceCandidate{}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(cands)
}
