package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/digitalmovement/airbnb-analyzer-sub000/internal/core/domain"
)

var (
	submitContact string
	requestJSON   bool
	listState     string
)

var requestCmd = &cobra.Command{
	Use:   "request",
	Short: "Manage analysis requests",
	Long: `Submit listing URLs for analysis and retrieve their results.

Requests are processed asynchronously by the worker; a submitted
request stays pending until a worker picks it up.`,
}

var requestSubmitCmd = &cobra.Command{
	Use:   "submit [listing-url]",
	Short: "Submit a listing URL for analysis",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestSubmit,
}

var requestGetCmd = &cobra.Command{
	Use:   "get [request-id]",
	Short: "Show a request and its report",
	Args:  cobra.ExactArgs(1),
	RunE:  runRequestGet,
}

var requestListCmd = &cobra.Command{
	Use:   "list",
	Short: "List requests, newest first",
	RunE:  runRequestList,
}

func init() {
	requestSubmitCmd.Flags().StringVar(&submitContact, "notify", "", "contact address to notify on completion")
	requestGetCmd.Flags().BoolVar(&requestJSON, "json", false, "output the request as JSON")
	requestListCmd.Flags().StringVar(&listState, "state", "", "filter by state (pending, completed, error)")

	requestCmd.AddCommand(requestSubmitCmd)
	requestCmd.AddCommand(requestGetCmd)
	requestCmd.AddCommand(requestListCmd)
	rootCmd.AddCommand(requestCmd)
}

func runRequestSubmit(cmd *cobra.Command, args []string) error {
	if err := initAnalyzer(); err != nil {
		return err
	}

	req, err := analyzerService.Submit(context.Background(), args[0], submitContact)
	if err != nil {
		return fmt.Errorf("submit failed: %w", err)
	}

	cmd.Printf("Request submitted: %s\n", req.RequestID)
	cmd.Println("Run 'airbnb-analyzer worker' to process pending requests.")
	return nil
}

func runRequestGet(cmd *cobra.Command, args []string) error {
	if err := initAnalyzer(); err != nil {
		return err
	}

	req, err := analyzerService.Get(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("get failed: %w", err)
	}

	if requestJSON {
		out, err := json.MarshalIndent(req, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		cmd.Println(string(out))
		return nil
	}

	cmd.Printf("Request:  %s\n", req.RequestID)
	cmd.Printf("URL:      %s\n", req.SourceURL)
	cmd.Printf("State:    %s\n", req.State)
	cmd.Printf("Created:  %s\n", req.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	if req.ContactAddress != "" {
		cmd.Printf("Notify:   %s\n", req.ContactAddress)
	}

	switch req.State {
	case domain.StateError:
		cmd.Printf("Failure:  %s\n", req.FailureReason)
	case domain.StateCompleted:
		cmd.Println()
		printReport(cmd, nil, req.ScoreReport)
	}
	return nil
}

func runRequestList(cmd *cobra.Command, _ []string) error {
	if err := initAnalyzer(); err != nil {
		return err
	}

	ctx := context.Background()
	var (
		requests []domain.Request
		err      error
	)
	if listState != "" {
		requests, err = requestStore.ListByState(ctx, domain.RequestState(listState))
	} else {
		requests, err = analyzerService.List(ctx)
	}
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if len(requests) == 0 {
		cmd.Println("No requests found.")
		return nil
	}

	for i := range requests {
		req := &requests[i]
		score := "-"
		if req.ScoreReport != nil {
			score = fmt.Sprintf("%d", req.ScoreReport.OverallScore)
		}
		cmd.Printf("%s  %-9s  %3s  %s\n", req.RequestID, req.State, score, req.SourceURL)
	}
	return nil
}
