package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"slate/internal/config"
	"slate/internal/store"
)

func newSettingsCommand(ctx *commandContext) *cobra.Command {
	settingsCmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and change runtime settings",
	}

	settingsCmd.AddCommand(newSettingsShowCommand(ctx))
	settingsCmd.AddCommand(newSetIntervalCommand(ctx))

	return settingsCmd
}

func newSettingsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show effective runtime settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				fallback := time.Duration(cfg.Scheduler.IntervalMinutes) * time.Minute
				interval, err := st.PublishInterval(cmd.Context(), fallback)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Publish interval: %s", interval)
				if interval == fallback {
					stored, err := st.SettingValue(cmd.Context(), store.SettingPublishInterval, "")
					if err != nil {
						return err
					}
					if stored == "" {
						fmt.Fprint(out, " (config default)")
					}
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}

func newSetIntervalCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set-interval <minutes>",
		Short: "Set the spacing between automatically planned publishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			minutes, err := strconv.Atoi(args[0])
			if err != nil || minutes <= 0 {
				return fmt.Errorf("invalid interval %q (expected a positive number of minutes)", args[0])
			}
			return ctx.withStore(func(cfg *config.Config, st *store.Store) error {
				if err := st.SetSetting(cmd.Context(), store.SettingPublishInterval, strconv.Itoa(minutes)); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Publish interval set to %d minute(s)\n", minutes)
				return nil
			})
		},
	}
}
