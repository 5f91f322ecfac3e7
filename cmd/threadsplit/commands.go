package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

var (
	statsFiles []string

	exportFiles     []string
	exportSeparator string
	exportCopy      bool
)

var statsCmd = &cobra.Command{
	Use:   "stats [text...]",
	Short: "Show thread statistics",
	Long: `Split the input and show statistics about the resulting thread.

Examples:
  threadsplit stats --file essay.txt
  echo "short text" | threadsplit stats`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().StringArrayVarP(&statsFiles, "file", "f", nil, "Read text from file (repeatable)")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inputs, err := readInputs(ctx, args, statsFiles)
	if err != nil {
		return err
	}

	svc, err := initService(nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, in := range inputs {
		resp, err := svc.Split(ctx, types.SplitRequest{Text: in.Text})
		if err != nil {
			return fmt.Errorf("failed to split %s: %w", in.Source, err)
		}

		stats := resp.Stats
		if stats == nil {
			fmt.Fprintf(out, "%s: empty thread\n", in.Source)
			continue
		}

		fmt.Fprintf(out, "Thread statistics (%s)\n", in.Source)
		fmt.Fprintln(out, "─────────────────")
		fmt.Fprintf(out, "Total tweets:     %d\n", stats.TotalTweets)
		fmt.Fprintf(out, "Total characters: %d\n", stats.TotalCharacters)
		fmt.Fprintf(out, "Avg length:       %.1f\n", stats.AvgLength)
		fmt.Fprintf(out, "Max length:       %d\n", stats.MaxLength)
		fmt.Fprintf(out, "Min length:       %d\n", stats.MinLength)
		fmt.Fprintf(out, "Over limit:       %d\n", stats.TweetsOverLimit)
		fmt.Fprintf(out, "Warnings:         %d\n\n", len(resp.Warnings))
	}

	return nil
}

var exportCmd = &cobra.Command{
	Use:   "export [text...]",
	Short: "Print the thread as one copy-ready block",
	Long: `Split the input and print all tweets joined by a separator, ready to paste
into a scheduling tool.

Examples:
  threadsplit export --file essay.txt
  threadsplit export --file essay.txt --separator "\n\n"
  threadsplit export --file essay.txt --copy`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringArrayVarP(&exportFiles, "file", "f", nil, "Read text from file (repeatable)")
	exportCmd.Flags().StringVarP(&exportSeparator, "separator", "s", "", "Separator between tweets; escapes like \\n are expanded (default from config)")
	exportCmd.Flags().BoolVar(&exportCopy, "copy", false, "Copy to the clipboard instead of printing")
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inputs, err := readInputs(ctx, args, exportFiles)
	if err != nil {
		return err
	}

	svc, err := initService(nil)
	if err != nil {
		return err
	}

	var tweets []string
	for _, in := range inputs {
		resp, err := svc.Split(ctx, types.SplitRequest{Text: in.Text})
		if err != nil {
			return fmt.Errorf("failed to split %s: %w", in.Source, err)
		}
		tweets = append(tweets, resp.Tweets...)
	}

	text := svc.Export(types.ExportRequest{Tweets: tweets, Separator: unescape(exportSeparator)})

	if exportCopy {
		if err := clipboard.WriteAll(text); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Copied %d tweets to the clipboard\n", len(tweets))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

// unescape expands \n and \t typed on the command line
func unescape(s string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(s)
}
