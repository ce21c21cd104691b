package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/store"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var (
		statusFlag string
		typeFlag   string
		topicFlag  string
		limitFlag  uint64
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content items, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				filter := store.ContentFilter{Limit: limitFlag}

				if statusFlag != "" {
					status, ok := store.ParseContentStatus(statusFlag)
					if !ok {
						return fmt.Errorf("unknown status %q", statusFlag)
					}
					filter.Status = status
				}
				if typeFlag != "" {
					contentType, ok := store.ParseContentType(typeFlag)
					if !ok {
						return fmt.Errorf("unknown content type %q", typeFlag)
					}
					filter.ContentType = contentType
				}
				if topicFlag != "" {
					topic, err := st.FindTopic(cmd.Context(), topicFlag, "")
					if err != nil {
						return err
					}
					if topic == nil {
						// Topic names are unique per category; fall back to a scan.
						topics, err := st.ListTopics(cmd.Context())
						if err != nil {
							return err
						}
						for _, candidate := range topics {
							if candidate.Name == topicFlag {
								topic = candidate
								break
							}
						}
					}
					if topic == nil {
						return fmt.Errorf("topic %q not found", topicFlag)
					}
					filter.TopicID = topic.ID
				}

				items, err := st.ListContents(cmd.Context(), filter)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(items) == 0 {
					fmt.Fprintln(out, "No content items found")
					return nil
				}

				colorize := shouldColorize(out)
				topicNames := map[int64]string{}
				rows := make([][]string, 0, len(items))
				for _, item := range items {
					name, ok := topicNames[item.TopicID]
					if !ok {
						name = fmt.Sprintf("#%d", item.TopicID)
						if topic, err := st.GetTopic(cmd.Context(), item.TopicID); err == nil && topic != nil {
							name = topic.Name
						}
						topicNames[item.TopicID] = name
					}
					rows = append(rows, []string{
						strconv.FormatInt(item.ID, 10),
						name,
						string(item.ContentType),
						colorizeStatus(string(item.Status), colorize),
						yesNo(item.DiagramPath != ""),
						formatTimestamp(item.CreatedAt),
					})
				}
				table := renderTable(
					[]string{"ID", "Topic", "Type", "Status", "Diagram", "Created"},
					rows,
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&statusFlag, "status", "", "Filter by status (draft, generating, ready, queued, published, failed)")
	cmd.Flags().StringVar(&typeFlag, "type", "", "Filter by content type (problem, concept)")
	cmd.Flags().StringVar(&topicFlag, "topic", "", "Filter by topic name")
	cmd.Flags().Uint64Var(&limitFlag, "limit", 0, "Maximum rows to return (0 = all)")
	return cmd
}
