package pool_test

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"slate/internal/logging"
	"slate/internal/pool"
)

func newTestPool(t *testing.T, seed int64) *pool.Pool {
	t.Helper()
	return pool.New(logging.NewNop(), pool.WithRand(rand.New(rand.NewSource(seed))))
}

func findTemplate(t *testing.T, p *pool.Pool, id string) pool.Template {
	t.Helper()
	for _, tpl := range p.Templates() {
		if tpl.ID == id {
			return tpl
		}
	}
	t.Fatalf("template %s not registered", id)
	return pool.Template{}
}

func TestAllFamiliesRegistered(t *testing.T) {
	p := newTestPool(t, 1)
	if got := len(p.Templates()); got != 23 {
		t.Fatalf("expected 23 templates, got %d", got)
	}

	seen := make(map[string]bool)
	for _, tpl := range p.Templates() {
		if seen[tpl.ID] {
			t.Fatalf("duplicate template id %s", tpl.ID)
		}
		seen[tpl.ID] = true
	}
	for _, id := range []string{"beam_ss_center", "fbd_resultant", "stress_axial", "moment_couple", "ss_curve_identify", "concept_gears_quiz"} {
		if !seen[id] {
			t.Fatalf("expected template %s to be registered", id)
		}
	}
}

func TestQuizScriptShape(t *testing.T) {
	p := newTestPool(t, 7)

	for i := 0; i < 50; i++ {
		script, err := p.Generate("beam reactions", "statics", "simply supported beam with point load", nil)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if script.TemplateID == "" {
			t.Fatal("expected a template id on the script")
		}
		if len(script.AnswerOptions) != 4 {
			t.Fatalf("expected 4 options, got %d", len(script.AnswerOptions))
		}

		letters := []string{"A", "B", "C", "D"}
		bodies := make(map[string]bool)
		for idx, opt := range script.AnswerOptions {
			prefix := letters[idx] + ": "
			if !strings.HasPrefix(opt, prefix) {
				t.Fatalf("option %d missing prefix %q: %s", idx, prefix, opt)
			}
			bodies[strings.TrimPrefix(opt, prefix)] = true
		}
		if len(bodies) != 4 {
			t.Fatalf("expected 4 distinct option bodies, got %d: %v", len(bodies), script.AnswerOptions)
		}
		switch script.CorrectAnswer {
		case "A", "B", "C", "D":
		default:
			t.Fatalf("correct answer must be a letter, got %q", script.CorrectAnswer)
		}
	}
}

func TestCorrectLetterTracksShuffledPosition(t *testing.T) {
	p := newTestPool(t, 11)
	tpl := findTemplate(t, p, "beam_ss_center")

	params := pool.Params{"length": 8, "load": 40}
	solved := tpl.Solve(params)
	correct := tpl.Options(params, solved)[0]

	// The correct option always embeds the symmetric reactions.
	want := fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", 20.0, 20.0)
	if correct != want {
		t.Fatalf("expected correct option %q, got %q", want, correct)
	}

	for i := 0; i < 30; i++ {
		script, err := p.Generate("simply supported beam center point load", "", "", nil)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		idx := int(script.CorrectAnswer[0] - 'A')
		body := strings.TrimPrefix(script.AnswerOptions[idx], script.CorrectAnswer+": ")
		regen := findTemplate(t, p, script.TemplateID)
		// The letter must point at the option that the template would mark
		// correct: for symmetric/quiz templates, it cannot point at a
		// distractor equal to another option body.
		count := 0
		for _, opt := range script.AnswerOptions {
			if strings.HasSuffix(opt, body) {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("correct option body %q not unique in %v (template %s)", body, script.AnswerOptions, regen.ID)
		}
	}
}

func TestMatchingPrefersTopScoringTags(t *testing.T) {
	p := newTestPool(t, 3)

	for i := 0; i < 20; i++ {
		script, err := p.Generate("cantilever", "beam reactions", "fixed support with end load moment", nil)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if !strings.HasPrefix(script.TemplateID, "beam_cantilever") {
			t.Fatalf("expected a cantilever template, got %s", script.TemplateID)
		}
	}
}

func TestUnmatchedTopicFallsBackToFullPool(t *testing.T) {
	p := newTestPool(t, 5)
	script, err := p.Generate("zzzz", "qqqq", "no tags here", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if script.TemplateID == "" {
		t.Fatal("expected fallback selection to produce a template")
	}
}

func TestFreshTemplatesPreferredOverRecent(t *testing.T) {
	p := newTestPool(t, 9)

	// Both cantilever templates tie on tag score for this topic text. With
	// one marked recent, the remaining fresh candidate must always win.
	recent := []string{"beam_cantilever_end"}
	for i := 0; i < 20; i++ {
		script, err := p.Generate("cantilever", "beam", "fixed reaction", recent)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if script.TemplateID != "beam_cantilever_mid" {
			t.Fatalf("expected the fresh cantilever template, got %s", script.TemplateID)
		}
	}
}

func TestLeastRecentlyUsedWinsWhenAllRecent(t *testing.T) {
	p := newTestPool(t, 13)

	// Newest first: beam_cantilever_mid was used most recently, so the
	// end-load variant is the LRU candidate and must be selected.
	recent := []string{"beam_cantilever_mid", "beam_cantilever_end"}
	for i := 0; i < 10; i++ {
		script, err := p.Generate("cantilever", "beam", "fixed reaction", recent)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if script.TemplateID != "beam_cantilever_end" {
			t.Fatalf("expected LRU template beam_cantilever_end, got %s", script.TemplateID)
		}
	}
}

func TestTrueFalseScript(t *testing.T) {
	p := newTestPool(t, 17)

	script, err := p.Generate("stress strain curve material true false", "", "", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if script.TemplateID != "ss_curve_true_false" {
		t.Fatalf("expected true/false template, got %s", script.TemplateID)
	}
	if script.Statement == "" {
		t.Fatal("expected a statement")
	}
	if script.CorrectAnswer != "True" && script.CorrectAnswer != "False" {
		t.Fatalf("expected True/False answer, got %q", script.CorrectAnswer)
	}
	if len(script.AnswerOptions) != 2 {
		t.Fatalf("expected two options, got %v", script.AnswerOptions)
	}
	if script.Type != "true_false" {
		t.Fatalf("expected true_false type, got %s", script.Type)
	}
}

func TestInfographicScript(t *testing.T) {
	p := newTestPool(t, 19)

	script, err := p.Generate("hooke spring elasticity infographic law", "", "", nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if script.TemplateID != "concept_hookes_law_info" {
		t.Fatalf("expected hooke infographic, got %s", script.TemplateID)
	}
	if script.CorrectAnswer != "" {
		t.Fatalf("infographics have no correct answer, got %q", script.CorrectAnswer)
	}
	if len(script.KeyFacts) == 0 {
		t.Fatal("expected key facts")
	}
	if script.Formula != "F = kx" {
		t.Fatalf("unexpected formula %q", script.Formula)
	}
	if script.CTAText != "Save this for your exam!" {
		t.Fatalf("unexpected CTA %q", script.CTAText)
	}
	if script.TweetText == "" {
		t.Fatal("expected tweet text")
	}
}

func TestIdentifyOptionsStayOnMaterialCurve(t *testing.T) {
	p := newTestPool(t, 23)
	tpl := findTemplate(t, p, "ss_curve_identify")

	// Cast iron (index 2) has only two valid curve points; any raw point
	// index must map onto one of them.
	for pointIdx := 0; pointIdx < 4; pointIdx++ {
		params := pool.Params{"material_idx": 2, "point_idx": float64(pointIdx)}
		opts := tpl.Options(params, tpl.Solve(params))
		correct := opts[0]
		if correct != "Ultimate Tensile Strength" && correct != "Fracture" {
			t.Fatalf("point %d mapped to %q, not on the cast iron curve", pointIdx, correct)
		}
		if len(opts) != 4 {
			t.Fatalf("expected 4 identify options, got %d", len(opts))
		}
	}
}
