package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/store"
)

func newStatusCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "status <content-id>",
		Short: "Show the lifecycle state of one content item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid content id %q", args[0])
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				item, err := st.GetContent(cmd.Context(), id)
				if err != nil {
					return err
				}
				if item == nil {
					return fmt.Errorf("content %d not found", id)
				}

				out := cmd.OutOrStdout()
				colorize := shouldColorize(cmd.OutOrStdout())

				topicName := fmt.Sprintf("#%d", item.TopicID)
				if topic, err := st.GetTopic(cmd.Context(), item.TopicID); err == nil && topic != nil {
					topicName = topic.Name
					if topic.Category != "" {
						topicName += " (" + topic.Category + ")"
					}
				}

				fmt.Fprintf(out, "Content %d\n", item.ID)
				fmt.Fprintf(out, "  Topic:       %s\n", topicName)
				fmt.Fprintf(out, "  Type:        %s\n", item.ContentType)
				fmt.Fprintf(out, "  Status:      %s\n", colorizeStatus(string(item.Status), colorize))
				fmt.Fprintf(out, "  Has script:  %s\n", yesNo(strings.TrimSpace(item.ScriptText) != ""))
				fmt.Fprintf(out, "  Has diagram: %s\n", yesNo(strings.TrimSpace(item.DiagramPath) != ""))
				fmt.Fprintf(out, "  Has audio:   %s\n", yesNo(strings.TrimSpace(item.AudioPath) != ""))
				fmt.Fprintf(out, "  Has video:   %s\n", yesNo(strings.TrimSpace(item.VideoPath) != ""))
				fmt.Fprintf(out, "  Created:     %s\n", formatTimestamp(item.CreatedAt))
				fmt.Fprintf(out, "  Updated:     %s\n", formatTimestamp(item.UpdatedAt))
				if item.ErrorMessage != "" {
					fmt.Fprintf(out, "  Error:       %s\n", item.ErrorMessage)
				}

				schedules, err := st.SchedulesForContent(cmd.Context(), item.ID)
				if err != nil {
					return err
				}
				if len(schedules) == 0 {
					return nil
				}
				fmt.Fprintln(out)
				fmt.Fprint(out, renderScheduleTable(schedules, colorize))
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}
