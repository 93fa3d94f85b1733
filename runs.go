package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/podcraft-ai/podcraft/internal/content"
	"github.com/podcraft-ai/podcraft/internal/runs"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "List recent runs or show one run",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := runs.Open(cfg.Paths.RunsDB)
			if err != nil {
				return err
			}
			defer store.Close()

			if len(args) == 1 {
				run, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(run)
			}

			if limit <= 0 {
				limit = cfg.Podcast.RunsLimit
			}
			list, err := store.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printRuns(cmd.OutOrStdout(), list)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Number of runs to list, defaults to podcast.runs_limit")
	return cmd
}

func printRuns(w io.Writer, list []*runs.Run) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(w, "No runs yet")
		return err
	}

	tp := content.NewTextProcessor()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTOPIC\tSTATUS\tARTIFACT\tUPDATED")
	for _, run := range list {
		detail := run.Artifact
		if run.Status == runs.StatusFailed {
			detail = run.Error
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			run.ID,
			tp.TruncateString(run.Topic, content.DisplayTruncateLength),
			run.Status,
			tp.TruncateString(detail, content.DisplayTruncateLength),
			run.UpdatedAt.Local().Format(time.DateTime),
		)
	}
	return tw.Flush()
}
