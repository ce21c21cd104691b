package pool

import (
	"fmt"
	"math"
)

func momentTemplates() []Template {
	return []Template{
		momentOfForce(),
		coupleMoment(),
	}
}

func momentOfForce() Template {
	return Template{
		ID:          "moment_force",
		Category:    "moments",
		Tags:        []string{"moment", "force", "torque", "point", "lever arm"},
		DiagramType: "fbd",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"force":    span{10, 50, 5},
			"distance": span{2, 8, 1},
			"angle":    span{30, 75, 15},
		},
		Solve: func(p Params) Values {
			return Values{"moment": round1(p["force"] * p["distance"] * math.Sin(radians(p["angle"])))}
		},
		Hook: func(p Params) string {
			return "Can you calculate the moment?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Free body diagram with forces. Lever problem. F = %.0f kN at %.0f degrees. Lever arm d = %.0f m.",
				p["force"], p["angle"], p["distance"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: F = %.0f kN, d = %.0f m, angle = %.0f deg", p["force"], p["distance"], p["angle"]), Highlight: "lever arm"},
				{Text: "Find: Moment about the pivot point", Highlight: "moment"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("M = %.1f kNm", s["moment"]),
				fmt.Sprintf("M = %.0f kNm", p["force"]*p["distance"]),
				fmt.Sprintf("M = %.1f kNm", round1(s["moment"]*1.5)),
				fmt.Sprintf("M = %.1f kNm", round1(s["moment"]/2)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"M = F x d x sin(theta) = %.0f x %.0f x sin(%.0f) = %.1f kNm",
				p["force"], p["distance"], p["angle"], s["moment"])
		},
	}
}

func coupleMoment() Template {
	return Template{
		ID:          "moment_couple",
		Category:    "moments",
		Tags:        []string{"moment", "couple", "torque", "pair"},
		DiagramType: "fbd",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"force": span{10, 40, 5},
			"arm":   span{1, 6, 0.5},
		},
		Solve: func(p Params) Values {
			return Values{"moment": round1(p["force"] * p["arm"])}
		},
		Hook: func(p Params) string {
			return "Can you find the couple moment?"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Free body diagram with forces. Two equal and opposite forces of %.0f kN separated by %.1fm.",
				p["force"], p["arm"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: Two forces of %.0f kN, arm = %.1fm", p["force"], p["arm"]), Highlight: "couple"},
				{Text: "Find: Couple moment", Highlight: "moment"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("M = %.1f kNm", s["moment"]),
				fmt.Sprintf("M = %.1f kNm", round1(2*p["force"]*p["arm"])),
				fmt.Sprintf("M = %.1f kNm", round1(s["moment"]/2)),
				fmt.Sprintf("M = %.1f kNm", round1(s["moment"]*0.7)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"Couple moment = F x d = %.0f x %.1f = %.1f kNm",
				p["force"], p["arm"], s["moment"])
		},
	}
}
