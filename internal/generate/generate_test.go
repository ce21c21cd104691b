package generate_test

import (
	"context"
	"errors"
	"math/rand"
	"os"
	"testing"

	"slate/internal/generate"
	"slate/internal/logging"
	"slate/internal/pool"
	"slate/internal/render"
	"slate/internal/services"
	"slate/internal/store"
	"slate/internal/testsupport"
)

func newOrchestrator(t *testing.T, renderer render.Renderer) (*generate.Orchestrator, *store.Store) {
	t.Helper()
	cfg := testsupport.NewConfig(t)
	st := testsupport.MustOpenStore(t, cfg)
	p := pool.New(logging.NewNop(), pool.WithRand(rand.New(rand.NewSource(42))))
	if renderer == nil {
		renderer = render.NewFileRenderer(cfg, logging.NewNop())
	}
	return generate.New(cfg, st, p, renderer, logging.NewNop()), st
}

func TestGenerateProducesReadyContent(t *testing.T) {
	o, st := newOrchestrator(t, nil)

	item, err := o.Generate(context.Background(), generate.Request{
		Topic:       "Beam Reactions",
		Category:    "statics",
		Description: "simply supported beam with point load",
	})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if item.Status != store.StatusReady {
		t.Fatalf("expected ready status, got %s", item.Status)
	}
	if item.ScriptJSON == "" || item.ScriptText == "" {
		t.Fatal("expected script payload and text to be persisted")
	}
	if item.DiagramPath == "" {
		t.Fatal("expected a diagram path")
	}
	if _, err := os.Stat(item.DiagramPath); err != nil {
		t.Fatalf("diagram artifact missing: %v", err)
	}

	stored, err := st.GetContent(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if stored.Status != store.StatusReady {
		t.Fatalf("stored status %s, want ready", stored.Status)
	}
}

func TestGenerateRequiresTopic(t *testing.T) {
	o, _ := newOrchestrator(t, nil)

	_, err := o.Generate(context.Background(), generate.Request{Topic: "  "})
	if !services.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

type failingRenderer struct{}

func (failingRenderer) RenderDiagram(context.Context, int64, *pool.Script) (string, error) {
	return "", errors.New("disk full")
}

func TestRenderFailureMarksContentFailed(t *testing.T) {
	o, st := newOrchestrator(t, failingRenderer{})

	item, err := o.Generate(context.Background(), generate.Request{Topic: "Axial Stress"})
	if err == nil {
		t.Fatal("expected pipeline error")
	}
	if item == nil {
		t.Fatal("expected the failed item to be returned")
	}

	stored, getErr := st.GetContent(context.Background(), item.ID)
	if getErr != nil {
		t.Fatalf("GetContent failed: %v", getErr)
	}
	if stored.Status != store.StatusFailed {
		t.Fatalf("expected failed status, got %s", stored.Status)
	}
	if stored.ErrorMessage == "" {
		t.Fatal("expected error message to be recorded")
	}

	// The topic row survives the failure.
	topic, topicErr := st.FindTopic(context.Background(), "Axial Stress", "")
	if topicErr != nil || topic == nil {
		t.Fatalf("expected topic to persist, got %v / %v", topic, topicErr)
	}
}

func TestGenerateBatchValidatesCount(t *testing.T) {
	o, _ := newOrchestrator(t, nil)

	if _, err := o.GenerateBatch(context.Background(), generate.Request{Topic: "Gears"}, 0); !services.IsValidation(err) {
		t.Fatalf("expected validation error for count 0, got %v", err)
	}
	if _, err := o.GenerateBatch(context.Background(), generate.Request{Topic: "Gears"}, 31); !services.IsValidation(err) {
		t.Fatalf("expected validation error for oversized batch, got %v", err)
	}

	items, err := o.GenerateBatch(context.Background(), generate.Request{Topic: "Gears", Category: "machines"}, 3)
	if err != nil {
		t.Fatalf("GenerateBatch failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for _, item := range items {
		if item.Status != store.StatusReady {
			t.Fatalf("expected ready item, got %s", item.Status)
		}
	}
}

func TestGenerateAsyncCompletes(t *testing.T) {
	o, st := newOrchestrator(t, nil)

	item, err := o.GenerateAsync(context.Background(), generate.Request{Topic: "Pulleys", Category: "machines"})
	if err != nil {
		t.Fatalf("GenerateAsync failed: %v", err)
	}
	if item.Status != store.StatusGenerating {
		t.Fatalf("expected generating status at submission, got %s", item.Status)
	}

	o.Wait()

	stored, err := st.GetContent(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("GetContent failed: %v", err)
	}
	if stored.Status != store.StatusReady {
		t.Fatalf("expected ready after wait, got %s", stored.Status)
	}
}
