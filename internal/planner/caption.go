package planner

import (
	"encoding/json"
	"strings"

	"slate/internal/store"
)

const fallbackCaption = "Check this out!"

// Caption resolves the text posted alongside the diagram. Priority: explicit
// custom caption, then the script's tweet text, then hook plus call to
// action, then a generic fallback.
func Caption(item *store.ContentItem, custom string) string {
	if text := strings.TrimSpace(custom); text != "" {
		return text
	}
	if item == nil || item.ScriptJSON == "" {
		return fallbackCaption
	}

	var script struct {
		TweetText string `json:"tweet_text"`
		HookText  string `json:"hook_text"`
		CTAText   string `json:"cta_text"`
	}
	if err := json.Unmarshal([]byte(item.ScriptJSON), &script); err != nil {
		return fallbackCaption
	}

	if text := strings.TrimSpace(script.TweetText); text != "" {
		return text
	}
	if hook := strings.TrimSpace(script.HookText); hook != "" {
		if cta := strings.TrimSpace(script.CTAText); cta != "" {
			return hook + "\n\n" + cta
		}
		return hook
	}
	return fallbackCaption
}
