package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shivavenkatesh/threadsplit/internal/chunking"
	"github.com/shivavenkatesh/threadsplit/internal/thread"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

var (
	splitFiles     []string
	splitJSON      bool
	splitRender    bool
	splitCopy      bool
	splitSeparator string
)

var splitCmd = &cobra.Command{
	Use:   "split [text...]",
	Short: "Split text into a thread",
	Long: `Split text into numbered tweets of at most 280 characters. Text comes from
the arguments, from one or more --file flags (each file becomes its own thread),
or from stdin.

Examples:
  threadsplit split "A long thought..."
  threadsplit split --file part1.txt --file part2.txt
  pbpaste | threadsplit split --render
  threadsplit split --file essay.txt --json`,
	RunE: runSplit,
}

func init() {
	splitCmd.Flags().StringArrayVarP(&splitFiles, "file", "f", nil, "Read text from file (repeatable)")
	splitCmd.Flags().BoolVar(&splitJSON, "json", false, "Output as JSON")
	splitCmd.Flags().BoolVar(&splitRender, "render", false, "Render each tweet in a box")
	splitCmd.Flags().BoolVar(&splitCopy, "copy", false, "Copy the exported thread to the clipboard")
	splitCmd.Flags().StringVar(&splitSeparator, "separator", "", "Separator used with --copy (default from config)")
}

func runSplit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inputs, err := readInputs(ctx, args, splitFiles)
	if err != nil {
		return err
	}

	svc, err := initService(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	results := make(map[string]*types.SplitResponse, len(inputs))
	var all []string

	for _, in := range inputs {
		resp, err := svc.Split(ctx, types.SplitRequest{Text: in.Text})
		if errors.Is(err, thread.ErrEmptyText) {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: no text to process\n", in.Source)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to split %s: %w", in.Source, err)
		}
		results[in.Source] = resp
		all = append(all, resp.Tweets...)

		if splitJSON {
			continue
		}
		if len(inputs) > 1 {
			fmt.Fprintf(out, "== %s ==\n\n", in.Source)
		}
		if splitRender {
			fmt.Fprintln(out, renderThread(resp.Tweets))
		} else {
			printThread(out, resp)
		}
		printWarnings(out, resp.Warnings)
	}

	if splitJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(inputs) == 1 {
			return enc.Encode(results[inputs[0].Source])
		}
		return enc.Encode(results)
	}

	if splitCopy && len(all) > 0 {
		text := svc.Export(types.ExportRequest{Tweets: all, Separator: unescape(splitSeparator)})
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintf(out, "Copied %d tweets to the clipboard\n", len(all))
	}

	return nil
}

// printThread prints each tweet with its length status
func printThread(w io.Writer, resp *types.SplitResponse) {
	fmt.Fprintf(w, "Generated %d tweets\n\n", len(resp.Tweets))
	for i, tweet := range resp.Tweets {
		n := chunking.Length(tweet)
		status := "ok"
		if n > chunking.MaxLength {
			status = "TOO LONG"
		}
		fmt.Fprintf(w, "Tweet %d (%d/%d chars, %s)\n%s\n\n", i+1, n, chunking.MaxLength, status, tweet)
	}
}

func printWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}
	fmt.Fprintln(w, "Warnings:")
	for _, warning := range warnings {
		fmt.Fprintf(w, "  - %s\n", warning)
	}
	fmt.Fprintln(w)
}
