package main

import (
	"strconv"

	"slate/internal/store"
)

func renderScheduleTable(schedules []*store.ScheduleRecord, colorize bool) string {
	rows := make([][]string, 0, len(schedules))
	for _, rec := range schedules {
		rows = append(rows, []string{
			strconv.FormatInt(rec.ID, 10),
			strconv.FormatInt(rec.ContentID, 10),
			rec.Platform,
			colorizeStatus(string(rec.Status), colorize),
			formatTimestamp(rec.ScheduledAt),
			formatOptionalTimestamp(rec.PublishedAt),
			truncate(rec.ErrorMessage, 40),
		})
	}
	return renderTable(
		[]string{"Schedule", "Content", "Platform", "Status", "Scheduled", "Published", "Error"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
	)
}
