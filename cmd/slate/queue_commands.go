package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/planner"
	"slate/internal/pubqueue"
	"slate/internal/store"
)

// scheduleTimeLayouts are accepted by the --at flag, most specific first.
var scheduleTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

func parseScheduleTime(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	for _, layout := range scheduleTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, trimmed, time.Local); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or 2006-01-02 15:04)", value)
}

func newQueueCommand(ctx *commandContext) *cobra.Command {
	var (
		atFlag       string
		captionFlag  string
		platformFlag string
	)

	cmd := &cobra.Command{
		Use:   "queue <content-id>",
		Short: "Schedule one ready content item for publishing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid content id %q", args[0])
			}

			var explicitAt *time.Time
			if atFlag != "" {
				parsed, err := parseScheduleTime(atFlag)
				if err != nil {
					return err
				}
				explicitAt = &parsed
			}

			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				queue := pubqueue.New(cfg, st, ctx.logger())
				plan := planner.New(cfg, st, queue, ctx.logger())

				rec, err := plan.QueueContent(cmd.Context(), id, platformFlag, captionFlag, explicitAt)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Queued content %d on %s at %s (schedule %d)\n",
					rec.ContentID, rec.Platform, formatTimestamp(rec.ScheduledAt), rec.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Explicit publish time (RFC3339 or local 2006-01-02 15:04)")
	cmd.Flags().StringVar(&captionFlag, "caption", "", "Custom caption; defaults to the generated tweet text")
	cmd.Flags().StringVar(&platformFlag, "platform", "", "Target platform; defaults to the configured one")
	return cmd
}

func newQueueAllCommand(ctx *commandContext) *cobra.Command {
	var platformFlag string

	cmd := &cobra.Command{
		Use:   "queue-all",
		Short: "Schedule every ready content item with even spacing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				queue := pubqueue.New(cfg, st, ctx.logger())
				plan := planner.New(cfg, st, queue, ctx.logger())

				records, err := plan.QueueAllReady(cmd.Context(), platformFlag)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No ready content to queue")
					return nil
				}
				fmt.Fprintf(out, "Queued %d content item(s)\n", len(records))
				fmt.Fprint(out, renderScheduleTable(records, shouldColorize(out)))
				fmt.Fprintln(out)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&platformFlag, "platform", "", "Target platform; defaults to the configured one")
	return cmd
}

func newQueueStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "queue-status",
		Short: "Show pending schedules and publish queue depth",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				queue := pubqueue.New(cfg, st, ctx.logger())

				attrs, err := queue.QueueAttributes(cmd.Context())
				if err != nil {
					return err
				}
				pending, err := st.PendingSchedules(cmd.Context())
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Publish queue: %d visible, %d delayed or in flight\n", attrs.Visible, attrs.Hidden)
				if len(pending) == 0 {
					fmt.Fprintln(out, "No pending schedules")
					return nil
				}
				fmt.Fprint(out, renderScheduleTable(pending, shouldColorize(out)))
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}
