package pool

import (
	"fmt"
	"strings"
)

// material captures the curve data used to draw and question a stress-strain
// diagram.
type material struct {
	Key               string
	Name              string
	Yield             float64
	Ultimate          float64
	FractureStrain    float64
	Modulus           float64
	Behavior          string
	ProportionalLimit float64
	// Points that actually exist on this material's curve. Brittle
	// materials have no yield plateau or proportional limit.
	Points []string
}

var curvePoints = []string{"Yield Strength", "Ultimate Tensile Strength", "Fracture", "Proportional Limit"}

var materials = []material{
	{
		Key: "steel", Name: "Mild Steel",
		Yield: 250, Ultimate: 400, FractureStrain: 0.25,
		Modulus: 200, Behavior: "ductile", ProportionalLimit: 220,
		Points: []string{"Yield Strength", "Ultimate Tensile Strength", "Fracture", "Proportional Limit"},
	},
	{
		Key: "aluminum", Name: "Aluminum 6061",
		Yield: 270, Ultimate: 310, FractureStrain: 0.12,
		Modulus: 69, Behavior: "ductile", ProportionalLimit: 240,
		Points: []string{"Yield Strength", "Ultimate Tensile Strength", "Fracture", "Proportional Limit"},
	},
	{
		Key: "cast_iron", Name: "Cast Iron",
		Yield: 130, Ultimate: 200, FractureStrain: 0.005,
		Modulus: 100, Behavior: "brittle", ProportionalLimit: 120,
		Points: []string{"Ultimate Tensile Strength", "Fracture"},
	},
}

// validPoint maps a raw point index onto a point that exists on the given
// material's curve, wrapping when needed.
func validPoint(mat material, pointIdx int) string {
	return mat.Points[pointIdx%len(mat.Points)]
}

func materialAt(idx float64) material {
	return materials[int(idx)%len(materials)]
}

type tfStatement struct {
	Text        string
	MaterialKey string
	IsTrue      bool
}

var tfStatements = []tfStatement{
	{"Mild steel shows a clear yield plateau before strain hardening", "steel", true},
	{"Cast iron exhibits significant necking before fracture", "cast_iron", false},
	{"Aluminum 6061 has a higher elastic modulus than mild steel", "aluminum", false},
	{"Cast iron fails with very little plastic deformation", "cast_iron", true},
	{"Mild steel has greater ductility than cast iron", "steel", true},
	{"The elastic modulus of aluminum is about 69 GPa", "aluminum", true},
}

// titleWords turns a snake_case key into display words ("cast_iron" ->
// "Cast Iron").
func titleWords(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func materialByKey(key string) material {
	for _, m := range materials {
		if m.Key == key {
			return m
		}
	}
	return materials[0]
}

func curveTemplates() []Template {
	return []Template{
		curveIdentify(),
		curveTrueFalse(),
		curveWhatsMissing(),
	}
}

func curveIdentify() Template {
	return Template{
		ID:          "ss_curve_identify",
		Category:    "stress_strain_curve",
		Tags:        []string{"stress", "strain", "curve", "yield", "ultimate", "fracture", "material", "interview"},
		DiagramType: "stress_strain_curve",
		Engagement:  EngagementIdentify,
		Params: map[string]sampler{
			"material_idx": indexChoice{len(materials)},
			"point_idx":    indexChoice{len(curvePoints)},
		},
		Solve: func(p Params) Values { return Values{} },
		Hook: func(p Params) string {
			return "Can you identify\nthis point?"
		},
		DiagramDesc: func(p Params) string {
			mat := materialAt(p["material_idx"])
			return fmt.Sprintf(
				"Stress-strain curve for %s. Highlight point: %s. Behavior: %s.",
				mat.Name, validPoint(mat, int(p["point_idx"])), mat.Behavior)
		},
		Steps: func(p Params) []Step {
			mat := materialAt(p["material_idx"])
			return []Step{
				{Text: fmt.Sprintf("Material: %s", mat.Name), Highlight: "material"},
				{Text: "Identify the highlighted point on the curve", Highlight: "point"},
			}
		},
		Options: func(p Params, _ Values) []string {
			mat := materialAt(p["material_idx"])
			highlighted := validPoint(mat, int(p["point_idx"]))
			options := []string{highlighted}
			for _, pt := range curvePoints {
				if pt != highlighted {
					options = append(options, pt)
				}
			}
			return options
		},
		Explanation: func(p Params, _ Values) string {
			mat := materialAt(p["material_idx"])
			return fmt.Sprintf(
				"The highlighted point is the %s on the %s stress-strain curve.",
				validPoint(mat, int(p["point_idx"])), mat.Name)
		},
	}
}

func curveTrueFalse() Template {
	return Template{
		ID:          "ss_curve_true_false",
		Category:    "stress_strain_curve",
		Tags:        []string{"stress", "strain", "curve", "material", "true false", "interview", "concept"},
		DiagramType: "stress_strain_curve",
		Engagement:  EngagementTrueFalse,
		Params: map[string]sampler{
			"stmt_idx": indexChoice{len(tfStatements)},
		},
		Solve: func(p Params) Values { return Values{} },
		Hook: func(p Params) string {
			stmt := tfStatements[int(p["stmt_idx"])]
			return fmt.Sprintf("True or False?\n%q", stmt.Text)
		},
		DiagramDesc: func(p Params) string {
			stmt := tfStatements[int(p["stmt_idx"])]
			mat := materialByKey(stmt.MaterialKey)
			return fmt.Sprintf(
				"Stress-strain curve for %s. Behavior: %s. Show all labels.",
				mat.Name, mat.Behavior)
		},
		Steps: func(p Params) []Step {
			stmt := tfStatements[int(p["stmt_idx"])]
			return []Step{{Text: stmt.Text, Highlight: "statement"}}
		},
		Options: func(p Params, _ Values) []string {
			stmt := tfStatements[int(p["stmt_idx"])]
			answer := "False"
			if stmt.IsTrue {
				answer = "True"
			}
			return []string{stmt.Text, answer}
		},
		Explanation: func(p Params, _ Values) string {
			stmt := tfStatements[int(p["stmt_idx"])]
			mat := materialByKey(stmt.MaterialKey)
			verdict := "FALSE"
			if stmt.IsTrue {
				verdict = "TRUE"
			}
			return fmt.Sprintf("%s: %s. %s is a %s material.", verdict, stmt.Text, titleWords(stmt.MaterialKey), mat.Behavior)
		},
	}
}

func curveWhatsMissing() Template {
	return Template{
		ID:          "ss_curve_whats_missing",
		Category:    "stress_strain_curve",
		Tags:        []string{"stress", "strain", "curve", "material", "interview", "identify"},
		DiagramType: "stress_strain_curve",
		Engagement:  EngagementIdentify,
		Params: map[string]sampler{
			"material_idx": indexChoice{len(materials)},
			"hidden_idx":   indexChoice{len(curvePoints)},
		},
		Solve: func(p Params) Values { return Values{} },
		Hook: func(p Params) string {
			return "What label\nis missing?"
		},
		DiagramDesc: func(p Params) string {
			mat := materialAt(p["material_idx"])
			return fmt.Sprintf(
				"Stress-strain curve for %s. Hide label: %s. Behavior: %s.",
				mat.Name, validPoint(mat, int(p["hidden_idx"])), mat.Behavior)
		},
		Steps: func(p Params) []Step {
			mat := materialAt(p["material_idx"])
			return []Step{
				{Text: fmt.Sprintf("Material: %s", mat.Name), Highlight: "material"},
				{Text: "One label has been replaced with '?' — identify it", Highlight: "missing"},
			}
		},
		Options: func(p Params, _ Values) []string {
			mat := materialAt(p["material_idx"])
			hidden := validPoint(mat, int(p["hidden_idx"]))
			options := []string{hidden}
			for _, pt := range curvePoints {
				if pt != hidden {
					options = append(options, pt)
				}
			}
			return options
		},
		Explanation: func(p Params, _ Values) string {
			mat := materialAt(p["material_idx"])
			return fmt.Sprintf("The missing label is the %s.", validPoint(mat, int(p["hidden_idx"])))
		},
	}
}
