package testsupport

import (
	"context"
	"testing"

	"slate/internal/config"
	"slate/internal/store"
)

// MustOpenStore opens a store.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewTopic creates a topic for tests using the provided store.
func NewTopic(t testing.TB, st *store.Store, name, category string) *store.Topic {
	t.Helper()

	topic, err := st.FindOrCreateTopic(context.Background(), name, category, "")
	if err != nil {
		t.Fatalf("store.FindOrCreateTopic: %v", err)
	}
	return topic
}

// NewReadyContent creates a content item that has finished the generation
// pipeline: READY status with script and diagram artifacts attached.
func NewReadyContent(t testing.TB, st *store.Store, topicID int64, diagramPath string) *store.ContentItem {
	t.Helper()

	ctx := context.Background()
	item, err := st.NewContent(ctx, topicID, store.TypeProblem)
	if err != nil {
		t.Fatalf("store.NewContent: %v", err)
	}
	item.ScriptText = "test script"
	item.ScriptJSON = `{"template_id":"test_template","text":"test script"}`
	item.DiagramPath = diagramPath
	item.Status = store.StatusReady
	if err := st.UpdateContent(ctx, item); err != nil {
		t.Fatalf("store.UpdateContent: %v", err)
	}
	return item
}
