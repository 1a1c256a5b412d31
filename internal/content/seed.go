package content

// Seed returns the built-in starter content used to prime an empty cache,
// so the fallback tier works before the first successful live generation.
func Seed() []GeneratedContent {
	items := make([]GeneratedContent, 0, len(seedQuestions)+len(seedFacts)+len(seedFormulas)+len(seedLanguage))
	for i := range seedQuestions {
		items = append(items, GeneratedContent{Kind: KindQuestion, Question: &seedQuestions[i]})
	}
	for i := range seedFacts {
		items = append(items, GeneratedContent{Kind: KindFact, Fact: &seedFacts[i]})
	}
	for i := range seedFormulas {
		items = append(items, GeneratedContent{Kind: KindFormula, Formula: &seedFormulas[i]})
	}
	for i := range seedLanguage {
		items = append(items, GeneratedContent{Kind: KindLanguage, LanguageTip: &seedLanguage[i]})
	}
	return items
}

const seedExplanation = "Standard GATE concept. Consult textbooks for detailed derivation."

var seedQuestions = []Question{
	{
		Question:        "In a consolidation test, if the drainage path for double drainage is 'd', what is the thickness of the clay layer?",
		Options:         []string{"d", "2d", "d/2", "4d"},
		CorrectOptionID: 1,
		Explanation:     seedExplanation,
		Topic:           "SM",
		Difficulty:      "medium",
	},
	{
		Question:        "Which of the following fluids exhibits a linear relationship between shear stress and rate of shear strain?",
		Options:         []string{"Dilatant fluid", "Bingham plastic", "Newtonian fluid", "Pseudoplastic fluid"},
		CorrectOptionID: 2,
		Explanation:     seedExplanation,
		Topic:           "FM",
		Difficulty:      "easy",
	},
	{
		Question:        "The maximum bending moment in a simply supported beam of span L carrying a uniformly distributed load 'w' per unit length is:",
		Options:         []string{"wL^2/8", "wL^2/4", "wL/2", "wL^2/12"},
		CorrectOptionID: 0,
		Explanation:     seedExplanation,
		Topic:           "SA",
		Difficulty:      "easy",
	},
	{
		Question:        "As per IS 456:2000, the minimum grade of concrete for reinforced concrete work in 'Severe' exposure condition is:",
		Options:         []string{"M20", "M25", "M30", "M35"},
		CorrectOptionID: 2,
		Explanation:     seedExplanation,
		Topic:           "RCC",
		Difficulty:      "medium",
		Source:          "IS 456:2000",
	},
	{
		Question:        "The ratio of inertia force to viscous force is known as:",
		Options:         []string{"Froude Number", "Reynolds Number", "Mach Number", "Weber Number"},
		CorrectOptionID: 1,
		Explanation:     seedExplanation,
		Topic:           "FM",
		Difficulty:      "easy",
	},
}

var seedFacts = []Fact{
	{Fact: "The slenderness ratio of a column is defined as the ratio of its effective length to its least radius of gyration.", Topic: "SA"},
	{Fact: "BOD (Biochemical Oxygen Demand) is a measure of the amount of oxygen required by aerobic microorganisms to decompose organic matter.", Topic: "ENV"},
	{Fact: "In a soil sample, if the void ratio is 'e', the porosity 'n' is given by n = e / (1 + e).", Topic: "SM"},
	{Fact: "Bernoulli's equation is based on the principle of conservation of energy.", Topic: "FM"},
	{Fact: "The point of contraflexure is the point where the bending moment changes its sign.", Topic: "SA"},
	{Fact: "For a statically determinate truss with 'm' members and 'j' joints, the condition for stability is m = 2j - 3.", Topic: "SA"},
	{Fact: "Quick sand condition occurs when the effective stress in the soil becomes zero due to upward seepage pressure.", Topic: "SM"},
}

var seedFormulas = []Formula{
	{
		Title:       "Reynolds Number (Re)",
		Formula:     "Re = (rho * v * D) / mu",
		Explanation: "Where rho=density, v=velocity, D=characteristic length, mu=dynamic viscosity. Re < 2000 implies laminar flow.",
		Topic:       "FM",
	},
	{
		Title:       "Darcy's Law (Groundwater Flow)",
		Formula:     "q = k * i * A",
		Explanation: "Where q=discharge, k=permeability, i=hydraulic gradient, A=cross-sectional area.",
		Topic:       "SM",
	},
	{
		Title:       "Bending Equation",
		Formula:     "M/I = sigma/y = E/R",
		Explanation: "M=Moment, I=Moment of Inertia, sigma=Bending Stress, y=Dist. from NA, E=Young's Modulus, R=Radius of Curvature.",
		Topic:       "SA",
	},
	{
		Title:       "Void Ratio & Porosity",
		Formula:     "e = n / (1 - n)",
		Explanation: "Relationship between void ratio (e) and porosity (n). Also, Se = wG (Saturation * Void Ratio = Water Content * Specific Gravity).",
		Topic:       "SM",
	},
	{
		Title:       "Euler's Buckling Load",
		Formula:     "P_cr = (pi^2 * E * I) / (L_eff)^2",
		Explanation: "Critical load for a column. L_eff depends on end conditions (e.g., L_eff = L for pinned-pinned).",
		Topic:       "SA",
	},
}

var seedLanguage = []LanguageTip{
	{
		Language: "German",
		Word:     "die Bruecke",
		Phonetic: "dee BROO-keh",
		Meaning:  "the bridge",
		Usage:    "Die Bruecke ueber den Fluss ist sehr alt.",
		Tip:      "Feminine noun; think of a bridge 'brooking' a river crossing.",
	},
	{
		Language: "Japanese",
		Word:     "ganbatte",
		Phonetic: "gahn-BAT-teh",
		Meaning:  "do your best / good luck",
		Usage:    "Say 'ganbatte' to a friend before their exam.",
		Tip:      "Common encouragement before any effort, including study sessions.",
	},
}
