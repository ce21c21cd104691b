package pool

import (
	"fmt"
	"math"
)

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func beamTemplates() []Template {
	return []Template{
		ssCenterLoad(),
		ssOffsetLoad(),
		ssTwoLoads(),
		cantileverEndLoad(),
		cantileverMidLoad(),
		ssUniformLoad(),
	}
}

func ssCenterLoad() Template {
	return Template{
		ID:          "beam_ss_center",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "simply supported", "reaction", "center", "point load", "loading"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{4, 12, 2},
			"load":   span{10, 50, 5},
		},
		Solve: func(p Params) Values {
			return Values{"ra": p["load"] / 2, "rb": p["load"] / 2}
		},
		Hook: func(p Params) string {
			return "Can you solve this Beam loading analysis problem?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Simply supported beam, %.0fm length. Pin support at left end (A), roller support at right end (B). Point load of %.0f kN applied at center (%.0fm from each end).",
				p["length"], p["load"], p["length"]/2)
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm beam with %.0f kN center load", p["length"], p["load"]), Highlight: "load"},
				{Text: "Find: Reaction forces at A and B", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", s["ra"], s["rb"]),
				fmt.Sprintf("Ra = %.0f kN, Rb = 0 kN", p["load"]),
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", s["ra"]+2, s["rb"]-2),
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", s["ra"]*2, s["rb"]*2),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf("By symmetry, each support carries half the load: %.0f / 2 = %.0f kN each", p["load"], s["ra"])
		},
	}
}

func ssOffsetLoad() Template {
	return Template{
		ID:          "beam_ss_offset",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "simply supported", "reaction", "offset", "point load", "loading", "asymmetric"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{6, 12, 2},
			"load":   span{10, 40, 5},
			"dist_a": span{2, 4, 1},
		},
		Solve: func(p Params) Values {
			rb := round1(p["load"] * p["dist_a"] / p["length"])
			ra := round1(p["load"] * (p["length"] - p["dist_a"]) / p["length"])
			return Values{"ra": ra, "rb": rb}
		},
		Hook: func(p Params) string {
			return "Can you solve this Beam reaction problem?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Simply supported beam, %.0fm length. Pin support at left end (A), roller support at right end (B). Point load of %.0f kN applied at %.0fm from left end.",
				p["length"], p["load"], p["dist_a"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm beam, %.0f kN load at %.0fm from A", p["length"], p["load"], p["dist_a"]), Highlight: "load position"},
				{Text: "Find: Reaction forces Ra and Rb", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			// Swapped reactions make a good distractor unless the load is
			// dead center, in which case swap equals the right answer.
			swapped := fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["rb"], s["ra"])
			if math.Abs(s["ra"]-s["rb"]) < 0.5 {
				swapped = fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["ra"]+2, s["rb"]-2)
			}
			return []string{
				fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["ra"], s["rb"]),
				swapped,
				fmt.Sprintf("Ra = %.1f kN, Rb = 0 kN", p["load"]),
				fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", round1(s["ra"]*1.3), round1(s["rb"]*0.7)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Taking moments about A: Rb = %.0f x %.0f / %.0f = %.1f kN. Ra = %.0f - %.1f = %.1f kN",
				p["load"], p["dist_a"], p["length"], s["rb"], p["load"], s["rb"], s["ra"])
		},
	}
}

func ssTwoLoads() Template {
	return Template{
		ID:          "beam_ss_two_loads",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "simply supported", "reaction", "two loads", "point load", "loading", "multiple"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{8, 12, 2},
			"load1":  span{10, 30, 5},
			"load2":  span{10, 30, 5},
			"dist1":  span{2, 3, 1},
			"dist2":  span{5, 7, 1},
		},
		Solve: func(p Params) Values {
			momentSum := p["load1"]*p["dist1"] + p["load2"]*p["dist2"]
			rb := round1(momentSum / p["length"])
			ra := round1(p["load1"] + p["load2"] - momentSum/p["length"])
			return Values{"ra": ra, "rb": rb}
		},
		Hook: func(p Params) string {
			return "Can you find the beam reactions?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Simply supported beam, %.0fm length. Pin support at left end (A), roller support at right end (B). Point load of %.0f kN at %.0fm from A. Point load of %.0f kN at %.0fm from A.",
				p["length"], p["load1"], p["dist1"], p["load2"], p["dist2"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm beam with %.0f kN at %.0fm and %.0f kN at %.0fm", p["length"], p["load1"], p["dist1"], p["load2"], p["dist2"]), Highlight: "loads"},
				{Text: "Find: Reaction forces at A and B", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			swapped := fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["rb"], s["ra"])
			if math.Abs(s["ra"]-s["rb"]) < 0.5 {
				swapped = fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["ra"]+3, s["rb"]-3)
			}
			// "Each support takes one load" collides with the correct (or
			// swapped) answer when the geometry happens to split that way.
			perLoad := fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", p["load1"], p["load2"])
			directMatch := math.Abs(s["ra"]-p["load1"]) < 0.5 && math.Abs(s["rb"]-p["load2"]) < 0.5
			swapMatch := math.Abs(s["rb"]-p["load1"]) < 0.5 && math.Abs(s["ra"]-p["load2"]) < 0.5
			if directMatch || swapMatch {
				perLoad = fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", round1(s["ra"]*1.3), round1(s["rb"]*0.7))
			}
			return []string{
				fmt.Sprintf("Ra = %.1f kN, Rb = %.1f kN", s["ra"], s["rb"]),
				swapped,
				fmt.Sprintf("Ra = %.1f kN, Rb = 0 kN", p["load1"]+p["load2"]),
				perLoad,
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Sum moments about A: Rb x %.0f = %.0f x %.0f + %.0f x %.0f. Rb = %.1f kN, Ra = %.1f kN",
				p["length"], p["load1"], p["dist1"], p["load2"], p["dist2"], s["rb"], s["ra"])
		},
	}
}

func cantileverEndLoad() Template {
	return Template{
		ID:          "beam_cantilever_end",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "cantilever", "reaction", "end load", "fixed", "moment"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{2, 8, 1},
			"load":   span{5, 40, 5},
		},
		Solve: func(p Params) Values {
			return Values{"reaction": p["load"], "moment": p["load"] * p["length"]}
		},
		Hook: func(p Params) string {
			return "Can you solve this cantilever beam problem?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Cantilever beam, %.0fm length. Fixed support at left end (A). Point load of %.0f kN applied at the free right end.",
				p["length"], p["load"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm cantilever with %.0f kN end load", p["length"], p["load"]), Highlight: "cantilever"},
				{Text: "Find: Reaction force and moment at A", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], s["moment"]),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], s["moment"]/2),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"]/2, s["moment"]),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], s["moment"]*2),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"For a cantilever: R = P = %.0f kN, M = P x L = %.0f x %.0f = %.0f kNm",
				s["reaction"], p["load"], p["length"], s["moment"])
		},
	}
}

func cantileverMidLoad() Template {
	return Template{
		ID:          "beam_cantilever_mid",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "cantilever", "reaction", "mid load", "fixed"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{4, 8, 1},
			"load":   span{10, 40, 5},
			"dist":   span{2, 3, 1},
		},
		Solve: func(p Params) Values {
			return Values{"reaction": p["load"], "moment": p["load"] * p["dist"]}
		},
		Hook: func(p Params) string {
			return "Can you solve this cantilever problem?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Cantilever beam, %.0fm length. Fixed support at left end (A). Point load of %.0f kN applied at %.0fm from the fixed end.",
				p["length"], p["load"], p["dist"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm cantilever, %.0f kN at %.0fm from fixed end", p["length"], p["load"], p["dist"]), Highlight: "load"},
				{Text: "Find: Reaction force and moment at fixed support", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], s["moment"]),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], p["load"]*p["length"]),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"]/2, s["moment"]),
				fmt.Sprintf("R = %.0f kN, M = %.0f kNm", s["reaction"], s["moment"]/2),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"R = P = %.0f kN (equilibrium). M = P x a = %.0f x %.0f = %.0f kNm",
				s["reaction"], p["load"], p["dist"], s["moment"])
		},
	}
}

func ssUniformLoad() Template {
	return Template{
		ID:          "beam_ss_udl",
		Category:    "beam_reactions",
		Tags:        []string{"beam", "simply supported", "reaction", "distributed", "udl", "uniform", "loading"},
		DiagramType: "beam",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"length": span{4, 10, 2},
			"w":      span{2, 10, 1},
		},
		Solve: func(p Params) Values {
			total := p["w"] * p["length"]
			return Values{"total_load": total, "ra": total / 2, "rb": total / 2}
		},
		Hook: func(p Params) string {
			return "Can you solve this distributed load problem?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Simply supported beam, %.0fm length. Pin support at left end (A), roller support at right end (B). Uniformly distributed load of %.0f kN/m along entire beam. Total load %.0f kN at center.",
				p["length"], p["w"], p["w"]*p["length"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0fm beam with UDL of %.0f kN/m", p["length"], p["w"]), Highlight: "distributed load"},
				{Text: "Find: Reaction forces at A and B", Highlight: "reactions"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", s["ra"], s["rb"]),
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", p["w"], p["w"]),
				fmt.Sprintf("Ra = %.0f kN, Rb = 0 kN", s["total_load"]),
				fmt.Sprintf("Ra = %.0f kN, Rb = %.0f kN", s["ra"]+3, s["rb"]-3),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Total load = %.0f x %.0f = %.0f kN. By symmetry: Ra = Rb = %.0f / 2 = %.0f kN",
				p["w"], p["length"], s["total_load"], s["total_load"], s["ra"])
		},
	}
}
