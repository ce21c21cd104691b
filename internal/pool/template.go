package pool

import "math/rand"

// Engagement describes how the audience interacts with a rendered script.
type Engagement string

const (
	EngagementQuiz        Engagement = "quiz_abcd"
	EngagementIdentify    Engagement = "identify"
	EngagementTrueFalse   Engagement = "true_false"
	EngagementInfographic Engagement = "infographic"
)

// Params holds sampled parameter values keyed by parameter name.
type Params map[string]float64

// Values holds solved quantities keyed by name.
type Values map[string]float64

// Step is one line in the problem statement shown on the rendered artifact.
type Step struct {
	Text      string `json:"text"`
	Highlight string `json:"highlight,omitempty"`
}

// Script is the fully rendered output of one template instantiation. It is
// persisted as the content item's script payload and read back by the
// renderer and caption builder.
type Script struct {
	Type               string   `json:"type"`
	TemplateID         string   `json:"template_id"`
	HookText           string   `json:"hook_text"`
	DiagramDescription string   `json:"diagram_description"`
	ContentSteps       []Step   `json:"content_steps"`
	Explanation        string   `json:"explanation,omitempty"`
	AnswerOptions      []string `json:"answer_options,omitempty"`
	CorrectAnswer      string   `json:"correct_answer,omitempty"`
	Statement          string   `json:"statement,omitempty"`
	KeyFacts           []string `json:"key_facts,omitempty"`
	Formula            string   `json:"formula,omitempty"`
	CTAText            string   `json:"cta_text,omitempty"`
	TweetText          string   `json:"tweet_text"`
}

// Template defines one problem family: the randomizable parameters, the math
// that solves a sampled instance, and the formatting hooks that turn the
// numbers into script text. Options, when present, must place the correct
// answer first; shuffling happens at generation time.
type Template struct {
	ID          string
	Category    string
	Tags        []string
	DiagramType string
	Engagement  Engagement
	Params      map[string]sampler
	Solve       func(Params) Values
	Hook        func(Params) string
	DiagramDesc func(Params) string
	Steps       func(Params) []Step
	Options     func(Params, Values) []string
	Explanation func(Params, Values) string
	KeyFacts    func(Params, Values) []string
	Formula     func(Params, Values) string
}

type sampler interface {
	sample(rng *rand.Rand) float64
}

// span samples uniformly from the discrete grid min, min+step, ..., max.
type span struct {
	min, max, step float64
}

func (s span) sample(rng *rand.Rand) float64 {
	steps := int((s.max - s.min) / s.step)
	return s.min + float64(rng.Intn(steps+1))*s.step
}

// indexChoice samples a uniform index in [0, n).
type indexChoice struct {
	n int
}

func (c indexChoice) sample(rng *rand.Rand) float64 {
	return float64(rng.Intn(c.n))
}

var quizTweets = []string{
	"most engineers get this wrong on their first try",
	"this looks simple but watch out for the trick",
	"my professor used to put this on every exam",
	"how fast can you solve this one?",
	"if you get this right you're ready for your exam",
	"engineering students... can you get this?",
	"quick statics problem. go.",
	"pause and try this before scrolling",
	"this is the kind of problem that separates A students from B students",
	"you either see it instantly or you don't",
	"be honest... did you get it right?",
	"your statics professor is watching. no pressure.",
	"30 seconds. that's all you need.",
	"I failed this type of problem in my first year. don't be like me",
	"real talk... this one is tricky",
	"nobody gets D on this one",
	"comment your answer before checking",
	"tag someone who needs to practice this",
	"this comes up in every FE exam",
}

var trueFalseTweets = []string{
	"true or false? most people guess wrong on this one",
	"this trips up so many engineering students",
	"sounds right... but is it?",
	"your gut feeling might be wrong on this one",
	"one of the most common misconceptions in mechanics",
	"I bet half of you get this wrong",
	"think before you answer this one",
	"this shows up on exams more than you'd think",
}

var identifyTweets = []string{
	"can you identify this point on the curve?",
	"name that point. engineering students should know this",
	"if you can't identify this you need to review your notes",
	"this comes up in every materials science exam",
	"stress-strain basics. do you know your stuff?",
	"how well do you actually know the stress-strain curve?",
}

var infographicTweets = []string{
	"save this for your next exam",
	"one of the most useful concepts in engineering",
	"if your professor didn't explain this well, here you go",
	"bookmark this. you'll need it later",
	"the concept that makes everything else click",
	"engineering fundamentals in one image",
	"I wish someone explained this to me this clearly in school",
	"this is the kind of stuff that shows up on the FE exam",
}
