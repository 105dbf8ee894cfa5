package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgergen",
		Short: "Ledger generation CLI",
		Long:  `A command line interface for generating and validating ledger records over the HTTP API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the ledger API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	rootCmd.AddCommand(generateCmd())
	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(batchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func generateCmd() *cobra.Command {
	var ifNotExists bool

	cmd := &cobra.Command{
		Use:   "generate <charge-id>",
		Short: "Generate ledger records for a charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{"insert_if_not_exists": ifNotExists}

			status, resp, err := postJSON("/api/v1/charges/"+args[0]+"/ledger", body)
			if err != nil {
				return err
			}

			if status != http.StatusCreated && status != http.StatusOK {
				return apiError("generation failed", status, resp)
			}

			printJSON(resp)
			return nil
		},
	}

	cmd.Flags().BoolVar(&ifNotExists, "if-not-exists", false, "Keep existing balanced records instead of regenerating")

	return cmd
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <charge-id>",
		Short: "Validate the stored ledger of a charge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, resp, err := getJSON("/api/v1/charges/" + args[0] + "/ledger/validation")
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return apiError("validation failed", status, resp)
			}

			printJSON(resp)

			if balanced, ok := resp["is_balanced"].(bool); ok && !balanced {
				return fmt.Errorf("charge %s is unbalanced", args[0])
			}

			return nil
		},
	}
}

func batchCmd() *cobra.Command {
	var ifNotExists bool

	cmd := &cobra.Command{
		Use:   "batch <charge-id>...",
		Short: "Generate ledger records for multiple charges",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]any{
				"charge_ids":           args,
				"insert_if_not_exists": ifNotExists,
			}

			status, resp, err := postJSON("/api/v1/ledger/batch", body)
			if err != nil {
				return err
			}

			if status != http.StatusOK {
				return apiError("batch generation failed", status, resp)
			}

			printJSON(resp)

			if failed, ok := resp["failed"].(float64); ok && failed > 0 {
				return fmt.Errorf("%d of %d charges failed", int(failed), len(args))
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&ifNotExists, "if-not-exists", false, "Keep existing balanced records instead of regenerating")

	return cmd
}

func postJSON(path string, body any) (int, map[string]any, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return 0, nil, err
	}

	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(baseURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func getJSON(path string) (int, map[string]any, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(baseURL + path)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	return decodeResponse(resp)
}

func decodeResponse(resp *http.Response) (int, map[string]any, error) {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}

	var parsed map[string]any
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &parsed); err != nil {
			return resp.StatusCode, nil, fmt.Errorf("failed to parse response: %w", err)
		}
	}

	return resp.StatusCode, parsed, nil
}

func apiError(msg string, status int, resp map[string]any) error {
	detail := ""
	if m, ok := resp["message"].(string); ok {
		detail = ": " + m
	}
	return fmt.Errorf("%s (status %d)%s", msg, status, detail)
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render output: %v\n", err)
		return
	}
	fmt.Println(strings.TrimRight(string(out), "\n"))
}
