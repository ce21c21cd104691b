package render_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"slate/internal/logging"
	"slate/internal/pool"
	"slate/internal/render"
	"slate/internal/testsupport"
)

func TestRenderDiagramWritesArtifact(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := render.NewFileRenderer(cfg, logging.NewNop())

	script := &pool.Script{
		Type:               "problem",
		TemplateID:         "beam_ss_center",
		HookText:           "Can you solve this Beam loading analysis problem?",
		DiagramDescription: "Simply supported beam, 8m length.",
		ContentSteps: []pool.Step{
			{Text: "Given: 8m beam with 40 kN center load"},
			{Text: "Find: Reaction forces at A and B"},
		},
		AnswerOptions: []string{"A: Ra = 20 kN, Rb = 20 kN", "B: Ra = 40 kN, Rb = 0 kN", "C: Ra = 22 kN, Rb = 18 kN", "D: Ra = 40 kN, Rb = 40 kN"},
		CorrectAnswer: "A",
		CTAText:       "Comment A, B, C, or D!",
	}

	path, err := r.RenderDiagram(context.Background(), 42, script)
	if err != nil {
		t.Fatalf("RenderDiagram failed: %v", err)
	}
	if !strings.HasSuffix(path, "slate-42.txt") {
		t.Fatalf("unexpected artifact path %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	content := string(data)
	for _, want := range []string{"Beam loading analysis", "A: Ra = 20 kN", "Comment A, B, C, or D!"} {
		if !strings.Contains(content, want) {
			t.Fatalf("artifact missing %q:\n%s", want, content)
		}
	}
}

func TestRenderDiagramRejectsNilScript(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	r := render.NewFileRenderer(cfg, logging.NewNop())

	if _, err := r.RenderDiagram(context.Background(), 1, nil); err == nil {
		t.Fatal("expected error for nil script")
	}
}
