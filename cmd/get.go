package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/hubwire/filter"
)

var filterExpr string

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <path>...",
	Short: "Fetch one or more API paths",
	Long: `Fetch the given API paths relative to the configured base URL.
Paginated list responses are merged into a single JSON array. Multiple
paths are fetched concurrently, each over its own connection.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)

	getCmd.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression applied to list results")
}

func runGet(cmd *cobra.Command, args []string) error {
	fltr, err := filter.Compile(filterExpr)
	if err != nil {
		return fmt.Errorf("invalid filter expression: %w", err)
	}

	results := make([]any, len(args))

	// One connection per path: a connection is strictly sequential, so
	// concurrency means separate sessions.
	g, ctx := errgroup.WithContext(context.Background())
	for i, path := range args {
		g.Go(func() error {
			conn, err := connect()
			if err != nil {
				return err
			}
			defer conn.Close()

			result, err := conn.Get(ctx, path)
			if err != nil {
				return fmt.Errorf("get %s: %w", path, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range results {
		if items, ok := results[i].([]any); ok {
			filtered, err := fltr.Apply(items)
			if err != nil {
				return err
			}
			logger.Debug().
				Str("path", args[i]).
				Int("total", len(items)).
				Int("matched", len(filtered)).
				Msg("Applied filter to list result")
			results[i] = filtered
		}
	}

	if len(args) == 1 {
		return printJSON(results[0])
	}

	combined := make(map[string]any, len(args))
	for i, path := range args {
		combined[path] = results[i]
	}
	return printJSON(combined)
}

func printJSON(v any) error {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}
