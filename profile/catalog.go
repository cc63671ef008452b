// SPDX-License-Identifier: MIT

package profile

// Profile is one named network archetype with its fixed narrative.
type Profile struct {
	Name         string `json:"name" yaml:"name"`
	Summary      string `json:"summary" yaml:"summary"`
	Strengths    string `json:"strengths" yaml:"strengths"`
	Weaknesses   string `json:"weaknesses" yaml:"weaknesses"`
	Prescription string `json:"prescription" yaml:"prescription"`
}

// Archetype names.
const (
	CosmopolitanLinchpin  = "Cosmopolitan Linchpin"
	VersatileExplorer     = "Versatile Explorer"
	FocusedPowerhouse     = "Focused Powerhouse"
	EstablishedSpecialist = "Established Specialist"
	GlobalArtisan         = "Global Artisan"
	CuriousTinkerer       = "Curious Tinkerer"
	LoyalCore             = "Loyal Core"
	InsularOutpost        = "Insular Outpost"
)

// catalog is indexed by the bit pattern large|diverse|strong (see key).
var catalog = [8]Profile{
	0b111: {
		Name: CosmopolitanLinchpin,
		Summary: "You have a large, varied network connected by strong, trusting relationships. " +
			"You’re like a cultural translator who bridges multiple worlds with depth and influence.",
		Strengths:  "Access to rich resources, new perspectives, and innovation across domains.",
		Weaknesses: "Maintaining strong ties at scale can be time-intensive.",
		Prescription: "Leverage your breadth to broker collaborations and spark creative solutions, " +
			"but manage your time to avoid burnout.",
	},
	0b110: {
		Name: VersatileExplorer,
		Summary: "You roam widely across multiple spheres, connecting with many people but at a shallower level. " +
			"You’re an idea scout, always seeking new perspectives.",
		Strengths:    "Great for spotting trends and opportunities.",
		Weaknesses:   "Less depth may limit immediate support.",
		Prescription: "Deepen a few key ties for more reliable support while retaining your broad reach.",
	},
	0b101: {
		Name: FocusedPowerhouse,
		Summary: "Your large network resides mainly in one domain, but the ties are strong and reliable. " +
			"You’re a big fish in a familiar pond.",
		Strengths:  "High trust and influence in your core domain.",
		Weaknesses: "Limited exposure to different fields.",
		Prescription: "Use your strong network for big wins and consider adding a few diverse contacts " +
			"to broaden horizons.",
	},
	0b100: {
		Name: EstablishedSpecialist,
		Summary: "You know many people in a specific area, but relationships aren’t deeply rooted. " +
			"You’re well-known but not tightly bonded.",
		Strengths:    "Easy access to information in a niche.",
		Weaknesses:   "Harder to secure help or endorsements.",
		Prescription: "Strengthen a handful of key relationships to anchor trust and amplify your influence.",
	},
	0b011: {
		Name: GlobalArtisan,
		Summary: "You have a smaller network, but it’s drawn from multiple domains and each tie is strong. " +
			"You’re a selective, skilled connector.",
		Strengths:  "Combines depth and breadth in a small circle.",
		Weaknesses: "Limited total reach.",
		Prescription: "Use your strong, diverse ties for creative problem-solving; " +
			"consider modest expansions to broaden influence.",
	},
	0b010: {
		Name: CuriousTinkerer,
		Summary: "Your small, varied network dips into multiple areas without forming strong bonds. " +
			"You’re an experimenter, always learning.",
		Strengths:    "Great for initial exploration and fast learning.",
		Weaknesses:   "Hard to mobilize help without stronger ties.",
		Prescription: "Identify key domains and deepen a few relationships to unlock more reliable support.",
	},
	0b001: {
		Name: LoyalCore,
		Summary: "You have a tight-knit inner circle concentrated in one domain. " +
			"You trust each other deeply.",
		Strengths:  "High trust and quick collaboration.",
		Weaknesses: "Limited diversity of ideas and opportunities.",
		Prescription: "Leverage your core group for critical support, " +
			"but gently branch into new areas to expand opportunities.",
	},
	0b000: {
		Name: InsularOutpost,
		Summary: "A small, domain-focused network with mostly weaker ties. " +
			"You’re relatively isolated.",
		Strengths:  "Minimal complexity to maintain.",
		Weaknesses: "Limited support, fewer growth opportunities.",
		Prescription: "Start by strengthening one or two key ties and then gradually introduce " +
			"new contacts from other domains.",
	},
}

// key packs the three booleans into a catalog index.
func key(large, diverse, strong bool) int {
	k := 0
	if large {
		k |= 4
	}
	if diverse {
		k |= 2
	}
	if strong {
		k |= 1
	}

	return k
}

// Lookup returns the archetype for the given combination.
func Lookup(large, diverse, strong bool) Profile {
	return catalog[key(large, diverse, strong)]
}

// All returns the eight archetypes, largest and most diverse first.
func All() []Profile {
	out := make([]Profile, 0, len(catalog))
	for k := len(catalog) - 1; k >= 0; k-- {
		out = append(out, catalog[k])
	}

	return out
}
