package compliance

import "strings"

// Named sub-limit keys inside LineRequirement.MinimumLimits.
const (
	LimitEachOccurrence      = "eachOccurrence"
	LimitGeneralAggregate    = "generalAggregate"
	LimitAggregate           = "aggregate"
	LimitEachAccident        = "eachAccident"
	LimitCombinedSingleLimit = "combinedSingleLimit"
)

// Required GL endorsement form codes (additional insured, ongoing and
// completed operations).
const (
	EndorsementCG2010 = "CG2010"
	EndorsementCG2037 = "CG2037"
)

// Universal baseline dollar minimums.
const (
	baseGLEachOccurrence   = 1_000_000
	baseGLGeneralAggregate = 2_000_000
	baseWCEachAccident     = 1_000_000
	baseAutoCSL            = 1_000_000
	baseUmbrellaEachOcc    = 1_000_000
	baseUmbrellaAggregate  = 2_000_000

	hazmatGLEachOccurrence   = 5_000_000
	hazmatGLGeneralAggregate = 10_000_000
	hazmatPollutionEachOcc   = 1_000_000
	hazmatPollutionAggregate = 2_000_000
)

// LineRequirement is the effective requirement for one coverage line.
type LineRequirement struct {
	MinimumLimits             map[string]int64 `json:"minimum_limits"`
	WaiverOfSubrogation       bool             `json:"waiver_of_subrogation"`
	FollowForm                bool             `json:"follow_form,omitempty"`
	HiredNonOwnedAuto         bool             `json:"hired_non_owned_auto,omitempty"`
	Endorsements              []string         `json:"endorsements,omitempty"`
	AdditionalInsuredRequired bool             `json:"additional_insured_required,omitempty"`
	NoCondoExclusion          bool             `json:"no_condo_exclusion,omitempty"`
}

// RequirementSet is the resolved requirement object: one entry per coverage
// line in effect. Umbrella and Pollution are present only when a trade tier
// or project type demands them.
type RequirementSet struct {
	GL        *LineRequirement `json:"gl,omitempty"`
	Umbrella  *LineRequirement `json:"umbrella,omitempty"`
	WC        *LineRequirement `json:"wc,omitempty"`
	Auto      *LineRequirement `json:"auto,omitempty"`
	Pollution *LineRequirement `json:"pollution,omitempty"`
}

// ── Universal baseline blocks ─────────────────────────────────────────────────

func baselineGL() *LineRequirement {
	return &LineRequirement{
		MinimumLimits: map[string]int64{
			LimitEachOccurrence:   baseGLEachOccurrence,
			LimitGeneralAggregate: baseGLGeneralAggregate,
		},
		WaiverOfSubrogation:       true,
		Endorsements:              []string{EndorsementCG2010, EndorsementCG2037},
		AdditionalInsuredRequired: true,
	}
}

func baselineWC() *LineRequirement {
	return &LineRequirement{
		MinimumLimits:       map[string]int64{LimitEachAccident: baseWCEachAccident},
		WaiverOfSubrogation: true,
	}
}

func baselineAuto() *LineRequirement {
	return &LineRequirement{
		MinimumLimits:       map[string]int64{LimitCombinedSingleLimit: baseAutoCSL},
		WaiverOfSubrogation: true,
		HiredNonOwnedAuto:   true,
	}
}

func baselineUmbrella() *LineRequirement {
	return &LineRequirement{
		MinimumLimits: map[string]int64{
			LimitEachOccurrence: baseUmbrellaEachOcc,
			LimitAggregate:      baseUmbrellaAggregate,
		},
		WaiverOfSubrogation: true,
		FollowForm:          true,
	}
}

// ── Trade tier table ──────────────────────────────────────────────────────────

// Risk tiers for construction trades.
const (
	TierGeneral   = 1
	TierSpecialty = 2
	TierHighRisk  = 3
)

// tradeRequirement describes one trade: its tier, whether the umbrella line
// must be carried, and the requirement overrides applied when this trade is
// the highest tier on a project. Overrides are explicit functions so
// precedence stays auditable.
type tradeRequirement struct {
	tier             int
	requiresUmbrella bool
	apply            func(rs *RequirementSet)
}

// fallbackTrade is used for unknown trade names: the lowest-tier defaults.
// This is a documented fallback, not an error.
const fallbackTrade = "carpentry"

func highRiskOverrides(rs *RequirementSet) {
	rs.GL.MinimumLimits[LimitEachOccurrence] = 2_000_000
	rs.GL.MinimumLimits[LimitGeneralAggregate] = 4_000_000
	rs.Umbrella.MinimumLimits[LimitEachOccurrence] = 5_000_000
	rs.Umbrella.MinimumLimits[LimitAggregate] = 5_000_000
}

var tradeTable = map[string]tradeRequirement{
	// Tier 1 — general trades, universal baseline only.
	"carpentry":   {tier: TierGeneral},
	"painting":    {tier: TierGeneral},
	"drywall":     {tier: TierGeneral},
	"flooring":    {tier: TierGeneral},
	"landscaping": {tier: TierGeneral},
	"cleaning":    {tier: TierGeneral},
	"fencing":     {tier: TierGeneral},

	// Tier 2 — specialty trades.
	"plumbing":   {tier: TierSpecialty},
	"electrical": {tier: TierSpecialty},
	"hvac":       {tier: TierSpecialty},
	"glazing":    {tier: TierSpecialty},
	"masonry":    {tier: TierSpecialty, requiresUmbrella: true},
	"concrete":   {tier: TierSpecialty, requiresUmbrella: true},

	// Tier 3 — high-risk trades.
	"roofing":        {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
	"demolition":     {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
	"excavation":     {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
	"scaffolding":    {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
	"steel_erection": {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
	"crane_operator": {tier: TierHighRisk, requiresUmbrella: true, apply: highRiskOverrides},
}

// lookupTrade resolves a trade name case-insensitively, falling back to the
// lowest-tier defaults for unknown names.
func lookupTrade(name string) tradeRequirement {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, " ", "_")
	if tr, ok := tradeTable[key]; ok {
		return tr
	}
	return tradeTable[fallbackTrade]
}

// TradeTier returns the risk tier for a trade name (unknown → TierGeneral).
func TradeTier(name string) int {
	return lookupTrade(name).tier
}

// ── Resolver ──────────────────────────────────────────────────────────────────

// ResolveRequirements builds the effective requirement set for a project and
// its assigned trades:
//
//  1. Start from fresh copies of the universal baseline blocks.
//  2. Find the single highest-tier trade among subTrades (unknown trades
//     count as tier 1) and apply only that trade's overrides. Lower-tier
//     trades in the same list contribute nothing beyond not raising the max.
//  3. Add the universal umbrella block when the winning trade requires it.
//  4. Apply the project-type modifier (condo / high_rise / hazmat).
//
// An empty or nil subTrades degrades to baseline-only; that is deliberate.
func ResolveRequirements(project ProjectContext, subTrades []string) *RequirementSet {
	rs := &RequirementSet{
		GL:   baselineGL(),
		WC:   baselineWC(),
		Auto: baselineAuto(),
	}

	maxTier := 0
	var winner tradeRequirement
	for _, name := range subTrades {
		tr := lookupTrade(name)
		if tr.tier > maxTier {
			maxTier = tr.tier
			winner = tr
		}
	}

	if maxTier > 0 {
		if winner.requiresUmbrella && rs.Umbrella == nil {
			rs.Umbrella = baselineUmbrella()
		}
		if winner.apply != nil {
			winner.apply(rs)
		}
	}

	switch project.ProjectType {
	case "condo":
		rs.GL.NoCondoExclusion = true
	case "high_rise":
		scaleLimitsByHalf(rs)
	case "hazmat":
		rs.GL.MinimumLimits[LimitEachOccurrence] = hazmatGLEachOccurrence
		rs.GL.MinimumLimits[LimitGeneralAggregate] = hazmatGLGeneralAggregate
		if rs.Umbrella == nil {
			rs.Umbrella = baselineUmbrella()
		}
		rs.Pollution = &LineRequirement{
			MinimumLimits: map[string]int64{
				LimitEachOccurrence: hazmatPollutionEachOcc,
				LimitAggregate:      hazmatPollutionAggregate,
			},
		}
	}

	return rs
}

// scaleLimitsByHalf multiplies every numeric minimum by 1.5 rounded up.
// Integer form of ceil(1.5v): (3v+1)/2.
func scaleLimitsByHalf(rs *RequirementSet) {
	for _, line := range []*LineRequirement{rs.GL, rs.Umbrella, rs.WC, rs.Auto, rs.Pollution} {
		if line == nil {
			continue
		}
		for k, v := range line.MinimumLimits {
			line.MinimumLimits[k] = (3*v + 1) / 2
		}
	}
}
