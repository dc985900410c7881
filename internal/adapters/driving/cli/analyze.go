package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

var (
	analyzeHint string
	analyzeJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [payload-file]",
	Short: "Score a listing payload from a local file",
	Long: `Normalises and scores a raw provider payload without going through
the request lifecycle. Useful for inspecting how a payload scores
before submitting its URL, or for provider payloads captured offline.

The payload file must contain a single JSON object.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeHint, "hint", "", "payload shape hint (flat, grouped)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "output the full report as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading payload: %w", err)
	}

	var payload any
	if err := json.Unmarshal(data, &payload); err != nil {
		return fmt.Errorf("payload is not valid JSON: %w", err)
	}

	scored, err := scoreListingPayload(payload, analyzeHint)
	if err != nil {
		return fmt.Errorf("scoring payload: %w", err)
	}

	if analyzeJSON {
		out, err := json.MarshalIndent(scored, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	printReport(cmd, scored.Listing, &scored.Report)
	return nil
}

// printReport renders a score report in a compact human format.
func printReport(cmd *cobra.Command, listing *domain.Listing, report *domain.ScoreReport) {
	if listing != nil && listing.Title != "" {
		cmd.Printf("Listing: %s\n", listing.Title)
	}
	cmd.Printf("Overall: %d/100 (%s)\n", report.OverallScore, report.SummaryTier)
	cmd.Println()

	for _, cs := range report.CategoryScores {
		cmd.Printf("  %-19s %3d/%-3d %s\n", cs.Category, cs.Score, cs.MaxScore, cs.Status)
		if cs.Message != "" {
			cmd.Printf("      %s\n", cs.Message)
		}
		for _, rec := range cs.Recommendations {
			cmd.Printf("      - %s\n", rec)
		}
	}

	if len(report.AIInsights) > 0 {
		cmd.Println()
		cmd.Println("AI commentary:")
		for _, cat := range domain.Categories() {
			insight, ok := report.AIInsights[string(cat)]
			if !ok {
				continue
			}
			cmd.Printf("  [%s]\n", cat)
			if summary, ok := insight["summary"].(string); ok && summary != "" {
				cmd.Printf("      %s\n", summary)
			}
			if suggestions, ok := insight["suggestions"].([]any); ok {
				for _, s := range suggestions {
					if str, ok := s.(string); ok {
						cmd.Printf("      - %s\n", strings.TrimSpace(str))
					}
				}
			}
		}
	}
}
