package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/hubwire/github"
)

var requestData string

// postCmd represents the post command
var postCmd = &cobra.Command{
	Use:   "post <path>",
	Short: "Send a POST request with a JSON body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrite("POST", args[0])
	},
}

// patchCmd represents the patch command
var patchCmd = &cobra.Command{
	Use:   "patch <path>",
	Short: "Send a PATCH request with a JSON body",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWrite("PATCH", args[0])
	},
}

func init() {
	rootCmd.AddCommand(postCmd)
	rootCmd.AddCommand(patchCmd)

	for _, c := range []*cobra.Command{postCmd, patchCmd} {
		c.Flags().StringVarP(&requestData, "data", "d", "", "JSON body (inline, @file, or - for stdin)")
	}
}

func runWrite(method, path string) error {
	body, err := readBody(requestData)
	if err != nil {
		return err
	}

	// Dry-run gating happens here, at the CLI layer. The connection
	// itself sends whatever it is asked to send.
	if cfg.Safety.DryRun {
		logger.Info().
			Str("method", method).
			Str("path", path).
			Msg("Dry run, request not sent")
		fmt.Printf("[DRY RUN] Would %s %s\n", method, path)
		return nil
	}

	conn, err := connect()
	if err != nil {
		return err
	}
	defer conn.Close()

	ctx := context.Background()
	var result any
	switch method {
	case "POST":
		result, err = conn.Post(ctx, path, body)
	case "PATCH":
		result, err = conn.Patch(ctx, path, body)
	}
	if err != nil {
		if github.IsNotFound(err) {
			return fmt.Errorf("%s does not exist: %w", path, err)
		}
		return err
	}

	return printJSON(result)
}

// readBody resolves the --data flag: inline JSON, @file, or - for
// stdin. Returns the decoded value so the connection re-serializes a
// validated body.
func readBody(data string) (any, error) {
	if data == "" {
		return nil, nil
	}

	var raw []byte
	switch {
	case data == "-":
		var err error
		raw, err = io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read body from stdin: %w", err)
		}
	case strings.HasPrefix(data, "@"):
		var err error
		raw, err = os.ReadFile(data[1:])
		if err != nil {
			return nil, fmt.Errorf("failed to read body file: %w", err)
		}
	default:
		raw = []byte(data)
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("request body is not valid JSON: %w", err)
	}
	return body, nil
}
