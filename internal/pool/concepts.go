package pool

import "fmt"

func conceptTemplates() []Template {
	return []Template{
		hookesLawInfo(),
		hookesLawQuiz(),
		pulleysInfo(),
		pulleysQuiz(),
		gearsInfo(),
		gearsQuiz(),
	}
}

func hookesLawInfo() Template {
	return Template{
		ID:          "concept_hookes_law_info",
		Category:    "concepts",
		Tags:        []string{"hooke", "spring", "elasticity", "concept", "infographic", "law"},
		DiagramType: "infographic",
		Engagement:  EngagementInfographic,
		Params: map[string]sampler{
			"k": span{50, 200, 25},
			"x": span{0.1, 0.5, 0.05},
		},
		Solve: func(p Params) Values {
			return Values{"force": round1(p["k"] * p["x"])}
		},
		Hook: func(p Params) string {
			return "Hooke's Law"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Hooke's Law. Spring diagram. k = %.0f N/m, x = %.2f m, F = %.1f N.",
				p["k"], p["x"], p["k"]*p["x"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: "F = kx", Highlight: "formula"},
				{Text: fmt.Sprintf("k = %.0f N/m, x = %.2f m", p["k"], p["x"]), Highlight: "values"},
			}
		},
		Explanation: func(p Params, s Values) string {
			return "Hooke's Law: Force is proportional to displacement in the elastic region."
		},
		KeyFacts: func(p Params, s Values) []string {
			return []string{
				"F = kx (force = spring constant x displacement)",
				"Only valid in the elastic region",
				fmt.Sprintf("Example: k = %.0f N/m, x = %.2f m", p["k"], p["x"]),
				fmt.Sprintf("F = %.1f N", s["force"]),
			}
		},
		Formula: func(p Params, s Values) string {
			return "F = kx"
		},
	}
}

func hookesLawQuiz() Template {
	return Template{
		ID:          "concept_hookes_law_quiz",
		Category:    "concepts",
		Tags:        []string{"hooke", "spring", "elasticity", "concept", "quiz"},
		DiagramType: "infographic",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"k": span{50, 200, 25},
			"x": span{0.1, 0.5, 0.05},
		},
		Solve: func(p Params) Values {
			return Values{"force": round1(p["k"] * p["x"])}
		},
		Hook: func(p Params) string {
			return fmt.Sprintf("Find the spring force\n(k = %.0f N/m)", p["k"])
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Hooke's Law. Spring diagram. k = %.0f N/m, x = %.2f m.",
				p["k"], p["x"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: k = %.0f N/m, x = %.2f m", p["k"], p["x"]), Highlight: "spring"},
				{Text: "Find: Force F", Highlight: "force"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("F = %.1f N", s["force"]),
				fmt.Sprintf("F = %.1f N", round1(s["force"]*2)),
				fmt.Sprintf("F = %.1f N", round1(s["force"]/2)),
				fmt.Sprintf("F = %.1f N", round1(p["k"]+p["x"])),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf("F = kx = %.0f x %.2f = %.1f N", p["k"], p["x"], s["force"])
		},
	}
}

func pulleysInfo() Template {
	return Template{
		ID:          "concept_pulleys_info",
		Category:    "concepts",
		Tags:        []string{"pulley", "mechanical advantage", "concept", "infographic", "simple machine"},
		DiagramType: "infographic",
		Engagement:  EngagementInfographic,
		Params: map[string]sampler{
			"n_pulleys": span{1, 4, 1},
			"load":      span{50, 200, 25},
		},
		Solve: func(p Params) Values {
			return Values{
				"ma":     p["n_pulleys"],
				"effort": round1(p["load"] * gravity / p["n_pulleys"]),
				"weight": round1(p["load"] * gravity),
			}
		},
		Hook: func(p Params) string {
			return "Pulley Systems"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Pulley system. %d pulley%s, load = %.0f kg.",
				int(p["n_pulleys"]), plural(p["n_pulleys"]), p["load"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: "MA = number of supporting ropes", Highlight: "formula"},
				{Text: "Effort = Weight / MA", Highlight: "calculation"},
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"With %d pulleys, MA = %d. Effort = %.0f N / %d = %.1f N",
				int(s["ma"]), int(s["ma"]), s["weight"], int(s["ma"]), s["effort"])
		},
		KeyFacts: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("Mechanical Advantage (MA) = %d", int(s["ma"])),
				fmt.Sprintf("Weight = %.0f kg x 9.81 = %.0f N", p["load"], s["weight"]),
				fmt.Sprintf("Effort = %.0f / %d = %.1f N", s["weight"], int(s["ma"]), s["effort"]),
				"More pulleys = less effort, but more rope to pull",
			}
		},
		Formula: func(p Params, s Values) string {
			return "Effort = Weight / MA"
		},
	}
}

func pulleysQuiz() Template {
	return Template{
		ID:          "concept_pulleys_quiz",
		Category:    "concepts",
		Tags:        []string{"pulley", "mechanical advantage", "concept", "quiz", "simple machine"},
		DiagramType: "infographic",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"n_pulleys": span{2, 4, 1},
			"load":      span{50, 200, 25},
		},
		Solve: func(p Params) Values {
			return Values{
				"effort": round1(p["load"] * gravity / p["n_pulleys"]),
				"weight": round1(p["load"] * gravity),
			}
		},
		Hook: func(p Params) string {
			return fmt.Sprintf("Find the effort force\n(%d pulleys, %.0f kg)", int(p["n_pulleys"]), p["load"])
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Pulley system. %d pulleys, load = %.0f kg.",
				int(p["n_pulleys"]), p["load"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %d pulleys, load = %.0f kg", int(p["n_pulleys"]), p["load"]), Highlight: "pulleys"},
				{Text: "Find: Effort force", Highlight: "effort"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("F = %.1f N", s["effort"]),
				fmt.Sprintf("F = %.0f N", s["weight"]),
				fmt.Sprintf("F = %.1f N", round1(s["effort"]*2)),
				fmt.Sprintf("F = %.1f N", round1(s["effort"]*0.5)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"MA = %d. Effort = %.0f / %d = %.1f N",
				int(p["n_pulleys"]), s["weight"], int(p["n_pulleys"]), s["effort"])
		},
	}
}

func gearsInfo() Template {
	return Template{
		ID:          "concept_gears_info",
		Category:    "concepts",
		Tags:        []string{"gear", "ratio", "concept", "infographic", "simple machine", "transmission"},
		DiagramType: "infographic",
		Engagement:  EngagementInfographic,
		Params: map[string]sampler{
			"driver_teeth": span{15, 30, 5},
			"driven_teeth": span{40, 80, 10},
		},
		Solve: func(p Params) Values {
			return Values{
				"ratio":      round2(p["driven_teeth"] / p["driver_teeth"]),
				"speed_mult": round2(p["driver_teeth"] / p["driven_teeth"]),
			}
		},
		Hook: func(p Params) string {
			return "Gear Ratios"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Gear ratio. Driver gear %d teeth, driven gear %d teeth.",
				int(p["driver_teeth"]), int(p["driven_teeth"]))
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: "Gear Ratio = Driven / Driver", Highlight: "formula"},
				{Text: fmt.Sprintf("%d / %d = %.2f", int(p["driven_teeth"]), int(p["driver_teeth"]), p["driven_teeth"]/p["driver_teeth"]), Highlight: "calc"},
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Gear ratio = %d / %d = %.2f. Output speed = %.2fx input speed, but torque is %.2fx higher.",
				int(p["driven_teeth"]), int(p["driver_teeth"]), s["ratio"], s["speed_mult"], s["ratio"])
		},
		KeyFacts: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("Driver: %d teeth, Driven: %d teeth", int(p["driver_teeth"]), int(p["driven_teeth"])),
				fmt.Sprintf("Gear Ratio = %.2f:1", s["ratio"]),
				fmt.Sprintf("Speed reduction: output is %.2fx input speed", s["speed_mult"]),
				fmt.Sprintf("Torque multiplication: output is %.2fx input torque", s["ratio"]),
			}
		},
		Formula: func(p Params, s Values) string {
			return "GR = N_driven / N_driver"
		},
	}
}

func gearsQuiz() Template {
	return Template{
		ID:          "concept_gears_quiz",
		Category:    "concepts",
		Tags:        []string{"gear", "ratio", "concept", "quiz", "simple machine"},
		DiagramType: "infographic",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"driver_teeth": span{15, 30, 5},
			"driven_teeth": span{40, 80, 10},
		},
		Solve: func(p Params) Values {
			return Values{"ratio": round2(p["driven_teeth"] / p["driver_teeth"])}
		},
		Hook: func(p Params) string {
			return "Find the gear ratio"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Infographic: Gear ratio. Driver gear %d teeth, driven gear %d teeth.",
				int(p["driver_teeth"]), int(p["driven_teeth"]))
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Driver: %d teeth, Driven: %d teeth", int(p["driver_teeth"]), int(p["driven_teeth"])), Highlight: "gears"},
				{Text: "Find: Gear ratio", Highlight: "ratio"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("GR = %.2f:1", s["ratio"]),
				fmt.Sprintf("GR = %.2f:1", round2(p["driver_teeth"]/p["driven_teeth"])),
				fmt.Sprintf("GR = %.2f:1", round2(s["ratio"]*2)),
				fmt.Sprintf("GR = %.2f:1", round2(s["ratio"]/2)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"GR = Driven / Driver = %d / %d = %.2f:1",
				int(p["driven_teeth"]), int(p["driver_teeth"]), s["ratio"])
		},
	}
}
