package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/jonathan/writing-highlighter/internal/annotation"
	"github.com/jonathan/writing-highlighter/internal/logging"
	"github.com/jonathan/writing-highlighter/internal/observability"
	"github.com/jonathan/writing-highlighter/internal/parsing"
	ischemas "github.com/jonathan/writing-highlighter/internal/schemas"
	"github.com/jonathan/writing-highlighter/internal/types"
	"github.com/jonathan/writing-highlighter/schemas"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate",
	Short: "Highlight a writing sample against scored criteria",
	Long: "Annotate reads a writing sample and its criteria (JSON, or the markup of previously rendered feedback) " +
		"and writes the sample as HTML with each evidenced passage wrapped in a criteria-mark span.",
	RunE: runAnnotate,
}

var (
	annotateTextFile     string
	annotateCriteriaFile string
	annotateMarkupFile   string
	annotateOutputFile   string
	annotateWritingID    string
	annotateAllow        []string
	annotateAllowAll     bool
	annotateJSON         bool
	annotateVerbose      bool
	annotateConfigFile   string
)

func init() {
	annotateCmd.Flags().StringVarP(&annotateTextFile, "text", "t", "", "Path to the writing sample (required)")
	annotateCmd.Flags().StringVarP(&annotateCriteriaFile, "criteria", "c", "", "Path to a criteria JSON file")
	annotateCmd.Flags().StringVar(&annotateMarkupFile, "markup", "", "Path to rendered feedback HTML to read criteria from")
	annotateCmd.Flags().StringVarP(&annotateOutputFile, "out", "o", "", "Output file (default: stdout)")
	annotateCmd.Flags().StringVar(&annotateWritingID, "writing-id", "", "Writing sample ID recorded in --json output")
	annotateCmd.Flags().StringSliceVar(&annotateAllow, "allow", nil, "Extra categories allowed to render auto-detected evidence")
	annotateCmd.Flags().BoolVar(&annotateAllowAll, "allow-all", false, "Allow auto-detected evidence for every category")
	annotateCmd.Flags().BoolVar(&annotateJSON, "json", false, "Write the full annotation as JSON instead of HTML")
	annotateCmd.Flags().BoolVarP(&annotateVerbose, "verbose", "v", false, "Print criteria, evidence and a summary to stderr")
	annotateCmd.Flags().StringVar(&annotateConfigFile, "config", "", "Path to a JSON config file")

	_ = annotateCmd.MarkFlagRequired("text")
	annotateCmd.MarkFlagsOneRequired("criteria", "markup")
	annotateCmd.MarkFlagsMutuallyExclusive("criteria", "markup")

	rootCmd.AddCommand(annotateCmd)
}

func runAnnotate(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(annotateConfigFile)
	if err != nil {
		return err
	}
	cfg.AllowedCategories = append(cfg.AllowedCategories, annotateAllow...)
	cfg.AllowAll = cfg.AllowAll || annotateAllowAll
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := os.ReadFile(annotateTextFile)
	if err != nil {
		return fmt.Errorf("failed to read text file: %w", err)
	}

	records, err := readCriteria(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	logCfg := cfg.Logging()
	if annotateVerbose {
		logCfg.Level = "debug"
		logCfg.Format = "console"
	}
	logger, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	annotator, err := newAnnotator(cfg, logger.Named("annotate"), nil)
	if err != nil {
		return err
	}

	res, err := annotator.Annotate(context.Background(), string(text), records)
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	if annotateVerbose {
		printVerbose(cmd.ErrOrStderr(), records, res)
	}

	output := []byte(res.HTML)
	if annotateJSON {
		output, err = annotationJSON(res)
		if err != nil {
			return err
		}
	}

	if annotateOutputFile == "" {
		_, err = cmd.OutOrStdout().Write(append(output, '\n'))
		return err
	}
	if err := os.WriteFile(annotateOutputFile, output, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Annotated %d spans\nOutput: %s\n", len(res.Spans), annotateOutputFile)
	return nil
}

// readCriteria loads records from --criteria or --markup. A criteria file that does not
// match the schema only produces a warning, since the parser tolerates loose records.
func readCriteria(warn io.Writer) ([]types.CriterionRecord, error) {
	if annotateMarkupFile != "" {
		data, err := os.ReadFile(annotateMarkupFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read markup file: %w", err)
		}
		return parsing.ParseCriteriaMarkup(string(data))
	}

	data, err := os.ReadFile(annotateCriteriaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read criteria file: %w", err)
	}

	if err := ischemas.ValidateJSONString(schemas.Criteria, string(data)); err != nil {
		var validationErr *ischemas.ValidationError
		if errors.As(err, &validationErr) {
			_, _ = fmt.Fprintf(warn, "Warning: criteria file does not match schema: %v\n", err)
		} else {
			_, _ = fmt.Fprintf(warn, "Warning: could not validate criteria file: %v\n", err)
		}
	}

	return parsing.ParseCriteriaJSON(data)
}

// annotationJSON renders the result as an AnnotateResponse and checks it against the
// annotation schema.
func annotationJSON(res *annotation.Result) ([]byte, error) {
	resp := types.AnnotateResponse{
		ID:        uuid.New(),
		WritingID: annotateWritingID,
		HTML:      res.HTML,
		Spans:     res.Spans,
		Criteria:  res.Reports,
		CreatedAt: time.Now().UTC(),
	}
	if resp.Spans == nil {
		resp.Spans = []types.MergedSpan{}
	}
	if resp.Criteria == nil {
		resp.Criteria = []types.CriterionReport{}
	}

	if err := ischemas.ValidateValue(schemas.Annotation, resp); err != nil {
		return nil, fmt.Errorf("annotation does not validate against schema: %w", err)
	}

	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}

func printVerbose(w io.Writer, records []types.CriterionRecord, res *annotation.Result) {
	printer := observability.NewPrinter(w)
	criteria := parsing.NormalizeCriteria(records)
	printer.PrintCriteria(criteria)

	for _, c := range criteria {
		var cands []types.EvidenceCandidate
		for _, cand := range res.Candidates {
			if cand.Criterion == c.Name {
				cands = append(cands, cand)
			}
		}
		printer.PrintEvidence(c.Name, cands)
	}

	printer.PrintReports(res.Reports, len(res.Spans))
}
