package pool

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"slate/internal/logging"
	"slate/internal/services"
)

// Pool holds every registered template and produces randomized scripts. All
// math is local; no external generation service is involved.
type Pool struct {
	mu        sync.Mutex
	templates []Template
	rng       *rand.Rand
	logger    *slog.Logger
}

// Option customizes pool construction.
type Option func(*Pool)

// WithRand injects a deterministic random source, used by tests.
func WithRand(rng *rand.Rand) Option {
	return func(p *Pool) {
		p.rng = rng
	}
}

// New builds a pool with every template family registered.
func New(logger *slog.Logger, opts ...Option) *Pool {
	if logger == nil {
		logger = logging.NewNop()
	}
	p := &Pool{
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: logging.NewComponentLogger(logger, "pool"),
	}
	for _, opt := range opts {
		opt(p)
	}

	p.templates = append(p.templates, beamTemplates()...)
	p.templates = append(p.templates, forceTemplates()...)
	p.templates = append(p.templates, stressTemplates()...)
	p.templates = append(p.templates, momentTemplates()...)
	p.templates = append(p.templates, curveTemplates()...)
	p.templates = append(p.templates, conceptTemplates()...)
	p.logger.Info("registered templates", logging.Int("count", len(p.templates)))
	return p
}

// Templates returns the registered templates. The slice is shared; callers
// must not mutate it.
func (p *Pool) Templates() []Template {
	return p.templates
}

// Generate selects a template matching the topic context, samples its
// parameters, and renders a complete script. Recently used template IDs are
// deprioritized so the pool cycles through every candidate before repeating.
func (p *Pool) Generate(topic, category, description string, recentIDs []string) (*Script, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	candidates := p.matchTemplates(topic, category, description)
	if len(candidates) == 0 {
		candidates = p.templates
	}
	if len(candidates) == 0 {
		return nil, services.Wrap(services.ErrConfiguration, "pool", "generate", "no templates registered", nil)
	}

	tpl := p.pickTemplate(candidates, recentIDs)
	p.logger.Info("selected template", logging.String(logging.FieldTemplateID, tpl.ID))

	sampled := make(Params, len(tpl.Params))
	for name, sampler := range tpl.Params {
		sampled[name] = sampler.sample(p.rng)
	}
	solved := tpl.Solve(sampled)

	script := &Script{
		Type:               "problem",
		TemplateID:         tpl.ID,
		HookText:           tpl.Hook(sampled),
		DiagramDescription: tpl.DiagramDesc(sampled),
		ContentSteps:       tpl.Steps(sampled),
	}
	if tpl.Engagement != EngagementQuiz {
		script.Type = string(tpl.Engagement)
	}
	if tpl.Explanation != nil {
		script.Explanation = tpl.Explanation(sampled, solved)
	}

	switch tpl.Engagement {
	case EngagementQuiz, EngagementIdentify:
		p.applyQuizOptions(script, tpl, sampled, solved)
	case EngagementTrueFalse:
		opts := tpl.Options(sampled, solved)
		script.Statement = opts[0]
		script.CorrectAnswer = opts[1]
		script.AnswerOptions = []string{"True", "False"}
		script.CTAText = "Comment TRUE or FALSE!"
	case EngagementInfographic:
		if tpl.KeyFacts != nil {
			script.KeyFacts = tpl.KeyFacts(sampled, solved)
		}
		if tpl.Formula != nil {
			script.Formula = tpl.Formula(sampled, solved)
		}
		script.CTAText = "Save this for your exam!"
	}

	script.TweetText = p.pickTweet(tpl.Engagement)
	return script, nil
}

// applyQuizOptions shuffles the raw options (correct answer first by
// convention) and records which letter the correct answer landed on.
func (p *Pool) applyQuizOptions(script *Script, tpl Template, sampled Params, solved Values) {
	raw := tpl.Options(sampled, solved)
	correct := raw[0]
	p.rng.Shuffle(len(raw), func(i, j int) {
		raw[i], raw[j] = raw[j], raw[i]
	})

	letters := []string{"A", "B", "C", "D"}
	options := make([]string, len(raw))
	for i, opt := range raw {
		options[i] = fmt.Sprintf("%s: %s", letters[i], opt)
		if opt == correct {
			script.CorrectAnswer = letters[i]
		}
	}
	script.AnswerOptions = options
	if tpl.Engagement == EngagementIdentify {
		script.CTAText = "Comment your answer!"
	} else {
		script.CTAText = "Comment A, B, C, or D!"
	}
}

// pickTemplate prefers candidates that do not appear in the recent window.
// When every candidate was used recently, the least recently used one wins:
// recentIDs is ordered newest first, so the highest index is the stalest.
func (p *Pool) pickTemplate(candidates []Template, recentIDs []string) Template {
	if len(recentIDs) == 0 {
		return candidates[p.rng.Intn(len(candidates))]
	}

	recency := make(map[string]int, len(recentIDs))
	for idx, id := range recentIDs {
		if _, seen := recency[id]; !seen {
			recency[id] = idx
		}
	}

	var fresh []Template
	for _, tpl := range candidates {
		if _, used := recency[tpl.ID]; !used {
			fresh = append(fresh, tpl)
		}
	}
	if len(fresh) > 0 {
		return fresh[p.rng.Intn(len(fresh))]
	}

	sorted := make([]Template, len(candidates))
	copy(sorted, candidates)
	sort.SliceStable(sorted, func(i, j int) bool {
		return recency[sorted[i].ID] > recency[sorted[j].ID]
	})
	return sorted[0]
}

// matchTemplates scores templates by counting tags that appear as substrings
// of the combined topic text, and keeps only the top-scoring subset. An empty
// result means nothing matched and the caller falls back to the full pool.
func (p *Pool) matchTemplates(topic, category, description string) []Template {
	searchText := strings.ToLower(topic + " " + category + " " + description)

	type scored struct {
		score int
		tpl   Template
	}
	var matches []scored
	for _, tpl := range p.templates {
		score := 0
		for _, tag := range tpl.Tags {
			if strings.Contains(searchText, tag) {
				score++
			}
		}
		if score > 0 {
			matches = append(matches, scored{score: score, tpl: tpl})
		}
	}
	if len(matches) == 0 {
		return nil
	}

	maxScore := 0
	for _, m := range matches {
		if m.score > maxScore {
			maxScore = m.score
		}
	}
	var best []Template
	for _, m := range matches {
		if m.score == maxScore {
			best = append(best, m.tpl)
		}
	}
	return best
}

func (p *Pool) pickTweet(engagement Engagement) string {
	var tweets []string
	switch engagement {
	case EngagementIdentify:
		tweets = identifyTweets
	case EngagementTrueFalse:
		tweets = trueFalseTweets
	case EngagementInfographic:
		tweets = infographicTweets
	default:
		tweets = quizTweets
	}
	return tweets[p.rng.Intn(len(tweets))]
}
