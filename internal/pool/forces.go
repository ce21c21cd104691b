package pool

import (
	"fmt"
	"math"
)

const gravity = 9.81

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func forceTemplates() []Template {
	return []Template{
		resultantForce(),
		cableTension(),
		inclinedPlane(),
	}
}

func resultantForce() Template {
	return Template{
		ID:          "fbd_resultant",
		Category:    "force_equilibrium",
		Tags:        []string{"force", "resultant", "vector", "fbd", "free body", "addition", "rope"},
		DiagramType: "fbd",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"f1":    span{20, 80, 10},
			"f2":    span{20, 80, 10},
			"angle": span{45, 120, 15},
		},
		Solve: func(p Params) Values {
			r := math.Sqrt(p["f1"]*p["f1"] + p["f2"]*p["f2"] + 2*p["f1"]*p["f2"]*math.Cos(radians(p["angle"])))
			return Values{"resultant": round1(r)}
		},
		Hook: func(p Params) string {
			return "Two ropes pull a ring bolt.\nFind the resultant force."
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Free body diagram with forces. Find the resultant. F1 = %.0f N at 0 degrees. F2 = %.0f N at %.0f degrees.",
				p["f1"], p["f2"], p["angle"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: F1 = %.0f N, F2 = %.0f N, angle = %.0f deg", p["f1"], p["f2"], p["angle"]), Highlight: "forces"},
				{Text: "Find: Magnitude of resultant force", Highlight: "resultant"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("R = %.1f N", s["resultant"]),
				fmt.Sprintf("R = %.0f N", p["f1"]+p["f2"]),
				fmt.Sprintf("R = %.0f N", math.Abs(p["f1"]-p["f2"])),
				fmt.Sprintf("R = %.1f N", round1(s["resultant"]*1.2)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"R = sqrt(F1² + F2² + 2·F1·F2·cosθ) = sqrt(%.0f² + %.0f² + 2·%.0f·%.0f·cos(%.0f°)) = %.1f N",
				p["f1"], p["f2"], p["f1"], p["f2"], p["angle"], s["resultant"])
		},
	}
}

func cableTension() Template {
	return Template{
		ID:          "fbd_cable_tension",
		Category:    "force_equilibrium",
		Tags:        []string{"force", "equilibrium", "cable", "tension", "hanging", "weight"},
		DiagramType: "fbd_cables",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"mass":  span{10, 50, 5},
			"angle": span{30, 60, 5},
		},
		Solve: func(p Params) Values {
			weight := round1(p["mass"] * gravity)
			tension := round1(p["mass"] * gravity / (2 * math.Sin(radians(p["angle"]))))
			return Values{"weight": weight, "tension": tension}
		},
		Hook: func(p Params) string {
			return fmt.Sprintf("Find the cable tension\n(%.0f kg, θ = %.0f°)", p["mass"], p["angle"])
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Hanging weight from two cables. mass = %.0f kg, angle = %.0f degrees from horizontal.",
				p["mass"], p["angle"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: mass = %.0f kg, cable angle = %.0f° from horizontal", p["mass"], p["angle"]), Highlight: "cables"},
				{Text: "Find: Tension in each cable", Highlight: "tension"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("T = %.1f N", s["tension"]),
				fmt.Sprintf("T = %.1f N", round1(s["weight"]/2)),
				fmt.Sprintf("T = %.1f N", round1(s["tension"]*0.7)),
				fmt.Sprintf("T = %.1f N", round1(s["tension"]*1.4)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Equilibrium: 2T·sin(θ) = W → T = W/(2·sinθ) = %.1f/(2·sin(%.0f°)) = %.1f N",
				s["weight"], p["angle"], s["tension"])
		},
	}
}

func inclinedPlane() Template {
	return Template{
		ID:          "fbd_inclined_plane",
		Category:    "force_equilibrium",
		Tags:        []string{"force", "incline", "plane", "friction", "fbd", "free body", "block", "slope"},
		DiagramType: "fbd",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"mass": span{5, 30, 5},
			// Max 40 degrees keeps cos and sin distinct so the distractors
			// never collide with the correct answer.
			"angle": span{15, 40, 5},
		},
		Solve: func(p Params) Values {
			weight := round1(p["mass"] * gravity)
			normal := round1(p["mass"] * gravity * math.Cos(radians(p["angle"])))
			parallel := round1(p["mass"] * gravity * math.Sin(radians(p["angle"])))
			return Values{"weight": weight, "normal": normal, "parallel": parallel}
		},
		Hook: func(p Params) string {
			return fmt.Sprintf("Find the normal force\n(m = %.0f kg, θ = %.0f°)", p["mass"], p["angle"])
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Free body diagram with forces. W = %.0f N at 270 degrees. Block on %.0f deg incline. Mass = %.0f kg.",
				p["mass"]*gravity, p["angle"], p["mass"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: %.0f kg block on %.0f deg incline", p["mass"], p["angle"]), Highlight: "incline"},
				{Text: "Find: Normal force (N) perpendicular to the slope", Highlight: "normal force"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("N = %.1f N", s["normal"]),
				fmt.Sprintf("N = %.1f N", s["weight"]),
				fmt.Sprintf("N = %.1f N", s["parallel"]),
				fmt.Sprintf("N = %.1f N", round1(s["normal"]*0.75)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"N = mg x cos(θ) = %.0f x 9.81 x cos(%.0f°) = %.1f N",
				p["mass"], p["angle"], s["normal"])
		},
	}
}
