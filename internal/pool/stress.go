package pool

import (
	"fmt"
	"math"
)

func stressTemplates() []Template {
	return []Template{
		axialStress(),
		shearStress(),
		barElongation(),
	}
}

func axialStress() Template {
	return Template{
		ID:          "stress_axial",
		Category:    "stress_strain",
		Tags:        []string{"stress", "axial", "rod", "bar", "tension", "compression", "cross section"},
		DiagramType: "stress",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"force":    span{10, 100, 10},
			"diameter": span{20, 60, 10},
		},
		Solve: func(p Params) Values {
			area := math.Pi * (p["diameter"] / 2) * (p["diameter"] / 2)
			return Values{
				"area":   round1(area),
				"stress": round1(p["force"] * 1000 / area),
			}
		},
		Hook: func(p Params) string {
			return "Find the axial stress (σ)"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Axial stress in a circular rod. Force of %.0f kN applied to a rod with diameter %.0f mm.",
				p["force"], p["diameter"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: F = %.0f kN, diameter = %.0f mm", p["force"], p["diameter"]), Highlight: "cross section"},
				{Text: "Find: Axial stress (MPa)", Highlight: "stress"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("σ = %.1f MPa", s["stress"]),
				fmt.Sprintf("σ = %.1f MPa", round1(p["force"]*1000/(math.Pi*p["diameter"]*p["diameter"]))),
				fmt.Sprintf("σ = %.1f MPa", round1(s["stress"]/2)),
				fmt.Sprintf("σ = %.1f MPa", round1(s["stress"]*1.5)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"A = pi*d^2/4 = pi*%.0f^2/4 = %.1f mm^2. sigma = F/A = %.0f/%.1f = %.1f MPa",
				p["diameter"], s["area"], p["force"]*1000, s["area"], s["stress"])
		},
	}
}

func shearStress() Template {
	return Template{
		ID:          "stress_shear",
		Category:    "stress_strain",
		Tags:        []string{"stress", "shear", "pin", "bolt", "connection"},
		DiagramType: "shear",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"force":    span{10, 80, 5},
			"diameter": span{10, 25, 5},
			"bolts":    span{1, 3, 1},
		},
		Solve: func(p Params) Values {
			areaOne := math.Pi * (p["diameter"] / 2) * (p["diameter"] / 2)
			return Values{
				"area_one":   round1(areaOne),
				"area_total": round1(p["bolts"] * areaOne),
				"shear":      round1(p["force"] * 1000 / (p["bolts"] * areaOne)),
			}
		},
		Hook: func(p Params) string {
			return fmt.Sprintf("Find the shear stress (τ)\n(%d bolt%s, d = %.0f mm)", int(p["bolts"]), plural(p["bolts"]), p["diameter"])
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Shear stress in a bolt connection. Force of %.0f kN on %d bolt%s with diameter %.0f mm in single shear.",
				p["force"], int(p["bolts"]), plural(p["bolts"]), p["diameter"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: F = %.0f kN, %d bolt(s), d = %.0f mm", p["force"], int(p["bolts"]), p["diameter"]), Highlight: "shear"},
				{Text: "Find: Shear stress in each bolt (MPa)", Highlight: "shear stress"},
			}
		},
		Options: func(p Params, s Values) []string {
			// "Forgot to divide by bolt count" only differs from the correct
			// answer when there is more than one bolt.
			forgotCount := fmt.Sprintf("τ = %.1f MPa", round1(s["shear"]*p["bolts"]))
			if p["bolts"] <= 1 {
				forgotCount = fmt.Sprintf("τ = %.1f MPa", round1(s["shear"]*2))
			}
			return []string{
				fmt.Sprintf("τ = %.1f MPa", s["shear"]),
				forgotCount,
				fmt.Sprintf("τ = %.1f MPa", round1(s["shear"]*1.5)),
				fmt.Sprintf("τ = %.1f MPa", round1(s["shear"]*0.6)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"A_bolt = pi*d^2/4 = %.1f mm^2. τ = F/(n*A) = %.0f/(%d*%.1f) = %.1f MPa",
				s["area_one"], p["force"]*1000, int(p["bolts"]), s["area_one"], s["shear"])
		},
	}
}

func barElongation() Template {
	return Template{
		ID:          "strain_elongation",
		Category:    "stress_strain",
		Tags:        []string{"strain", "elongation", "deformation", "bar", "rod", "elastic", "young"},
		DiagramType: "stress",
		Engagement:  EngagementQuiz,
		Params: map[string]sampler{
			"force":    span{20, 100, 10},
			"length":   span{1, 4, 0.5},
			"diameter": span{20, 50, 10},
			"E":        span{200, 200, 1}, // steel, fixed
		},
		Solve: func(p Params) Values {
			area := math.Pi * (p["diameter"] / 2) * (p["diameter"] / 2)
			delta := (p["force"] * 1000 * p["length"] * 1000) / (area * p["E"] * 1000)
			return Values{"area": round2(area), "delta": round2(delta)}
		},
		Hook: func(p Params) string {
			return "Find the elongation\nin the bar (δ)"
		},
		DiagramDesc: func(p Params) string {
			return fmt.Sprintf(
				"Axial elongation of a steel bar under tension. Force of %.0f kN on a steel bar, length %.1f m, diameter %.0f mm, modulus E = %.0f GPa.",
				p["force"], p["length"], p["diameter"], p["E"])
		},
		Steps: func(p Params) []Step {
			return []Step{
				{Text: fmt.Sprintf("Given: F=%.0fkN, L=%.1fm, d=%.0fmm, E=%.0fGPa", p["force"], p["length"], p["diameter"], p["E"]), Highlight: "properties"},
				{Text: "Find: Elongation (mm)", Highlight: "deformation"},
			}
		},
		Options: func(p Params, s Values) []string {
			return []string{
				fmt.Sprintf("δ = %.2f mm", s["delta"]),
				fmt.Sprintf("δ = %.2f mm", round2(s["delta"]*2)),
				fmt.Sprintf("δ = %.2f mm", round2(s["delta"]/2)),
				fmt.Sprintf("δ = %.2f mm", round2(s["delta"]*1.5)),
			}
		},
		Explanation: func(p Params, s Values) string {
			return fmt.Sprintf(
				"delta = PL/AE = (%.0f x %.0f) / (%.1f x %.0f) = %.2f mm",
				p["force"]*1000, p["length"]*1000, s["area"], p["E"]*1000, s["delta"])
		},
	}
}

func plural(n float64) string {
	if n > 1 {
		return "s"
	}
	return ""
}
