package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shivavenkatesh/threadsplit/internal/poster"
	"github.com/shivavenkatesh/threadsplit/pkg/types"
)

var (
	postFiles []string
	postDelay time.Duration
)

var postCmd = &cobra.Command{
	Use:   "post [text...]",
	Short: "Dry-run posting a thread as a reply chain",
	Long: `Split the input, validate it for posting and walk it as a reply chain.
Each tweet is printed with a generated ID and the ID it replies to, waiting
--delay between tweets. Posting stops at the first failure.

Validation rejects threads longer than 25 tweets, tweets over 280 characters
and empty tweets before anything is posted.

Examples:
  threadsplit post --file essay.txt
  threadsplit post --file essay.txt --delay 500ms`,
	RunE: runPost,
}

func init() {
	postCmd.Flags().StringArrayVarP(&postFiles, "file", "f", nil, "Read text from file (repeatable)")
	postCmd.Flags().DurationVar(&postDelay, "delay", 0, "Delay between tweets (default from config)")
}

func runPost(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	inputs, err := readInputs(ctx, args, postFiles)
	if err != nil {
		return err
	}
	if len(inputs) != 1 {
		return fmt.Errorf("post takes exactly one input, got %d", len(inputs))
	}

	if cmd.Flags().Changed("delay") {
		cfg.Post.Delay = postDelay
	}

	out := cmd.OutOrStdout()
	svc, err := initService(poster.NewConsoleSubmitter(out))
	if err != nil {
		return err
	}

	resp, err := svc.Split(ctx, types.SplitRequest{Text: inputs[0].Text})
	if err != nil {
		return err
	}

	if v := svc.Validate(resp.Tweets); !v.Valid {
		fmt.Fprintln(out, "Thread validation failed:")
		for _, e := range v.Errors {
			fmt.Fprintf(out, "  - %s\n", e)
		}
		return fmt.Errorf("thread cannot be posted")
	}

	fmt.Fprintf(out, "Posting %d tweets (estimated %s)\n\n",
		len(resp.Tweets), poster.EstimateDuration(len(resp.Tweets), cfg.Post.Delay))

	res, err := svc.Post(ctx, resp.Tweets)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Posted %d of %d tweets\n", res.SuccessCount, len(resp.Tweets))
	if res.ThreadURL != "" {
		fmt.Fprintf(out, "Thread: %s\n", res.ThreadURL)
	}
	for _, e := range res.Errors {
		fmt.Fprintf(out, "  - %s\n", e)
	}
	if len(res.Errors) > 0 {
		return fmt.Errorf("posting stopped early")
	}

	return nil
}
