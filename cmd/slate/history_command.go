package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/store"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	cmd := &cobra.Command{
		Use:   "history [content-id]",
		Short: "Show publish history, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				var (
					records []*store.ScheduleRecord
					err     error
				)
				if len(args) == 1 {
					id, parseErr := strconv.ParseInt(args[0], 10, 64)
					if parseErr != nil {
						return fmt.Errorf("invalid content id %q", args[0])
					}
					records, err = st.SchedulesForContent(cmd.Context(), id)
				} else {
					records, err = st.ScheduleHistory(cmd.Context(), limitFlag)
				}
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				if len(records) == 0 {
					fmt.Fprintln(out, "No publish history")
					return nil
				}
				fmt.Fprint(out, renderScheduleTable(records, shouldColorize(out)))
				fmt.Fprintln(out)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limitFlag, "limit", 50, "Maximum rows when no content id is given")
	return cmd
}
