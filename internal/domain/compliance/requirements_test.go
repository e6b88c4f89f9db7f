package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// ──────────────────────────────────────────────────────────────────────────────
// ResolveRequirements — baseline, tier resolution, project-type modifiers.
//
// The resolver is the canary for every downstream check: if the baseline
// constants or the highest-tier-wins rule drift, these fixtures fail first.
// ──────────────────────────────────────────────────────────────────────────────

func TestResolve_BaselineOnly(t *testing.T) {
	rs := compliance.ResolveRequirements(compliance.ProjectContext{}, nil)

	require.NotNil(t, rs.GL, "GL is always part of the baseline")
	require.NotNil(t, rs.WC, "WC is always part of the baseline")
	require.NotNil(t, rs.Auto, "Auto is always part of the baseline")
	assert.Nil(t, rs.Umbrella, "umbrella only appears when a trade requires it")
	assert.Nil(t, rs.Pollution, "pollution only appears for hazmat projects")

	assert.Equal(t, int64(1_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence])
	assert.Equal(t, int64(2_000_000), rs.GL.MinimumLimits[compliance.LimitGeneralAggregate])
	assert.Equal(t, int64(1_000_000), rs.WC.MinimumLimits[compliance.LimitEachAccident])
	assert.Equal(t, int64(1_000_000), rs.Auto.MinimumLimits[compliance.LimitCombinedSingleLimit])

	assert.ElementsMatch(t, []string{compliance.EndorsementCG2010, compliance.EndorsementCG2037},
		rs.GL.Endorsements, "baseline requires both additional insured endorsements")
	assert.True(t, rs.GL.WaiverOfSubrogation)
	assert.True(t, rs.WC.WaiverOfSubrogation)
	assert.True(t, rs.Auto.WaiverOfSubrogation)
	assert.True(t, rs.Auto.HiredNonOwnedAuto)
	assert.True(t, rs.GL.AdditionalInsuredRequired)
}

func TestResolve_UnknownTradeFallsBackToLowestTier(t *testing.T) {
	baseline := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"carpentry"})
	unknown := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"basket weaving"})

	assert.Equal(t, baseline, unknown,
		"an unknown trade must silently resolve to carpentry (tier 1) defaults")
	assert.Equal(t, compliance.TierGeneral, compliance.TradeTier("basket weaving"))
}

func TestResolve_TradeLookupIsCaseInsensitive(t *testing.T) {
	lower := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"roofing"})
	mixed := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"  Roofing "})

	assert.Equal(t, lower, mixed, "trade lookup must ignore case and surrounding whitespace")
}

// Highest tier wins: adding a lower-tier trade to the list must never change
// the resolved requirement set.
func TestResolve_HighestTierWins(t *testing.T) {
	only := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"roofing"})
	mixed := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"carpentry", "plumbing", "roofing"})

	assert.Equal(t, only, mixed,
		"lower-tier trades in the same list must contribute nothing beyond not raising the max")
}

func TestResolve_HighRiskTradeOverrides(t *testing.T) {
	rs := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"roofing"})

	require.NotNil(t, rs.Umbrella, "tier 3 trades require the umbrella line")
	assert.Equal(t, int64(2_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence])
	assert.Equal(t, int64(4_000_000), rs.GL.MinimumLimits[compliance.LimitGeneralAggregate])
	assert.Equal(t, int64(5_000_000), rs.Umbrella.MinimumLimits[compliance.LimitEachOccurrence])
	assert.True(t, rs.Umbrella.FollowForm)
}

func TestResolve_SpecialtyTradeWithUmbrella(t *testing.T) {
	rs := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"masonry"})

	require.NotNil(t, rs.Umbrella, "masonry carries the universal umbrella block")
	assert.Equal(t, int64(1_000_000), rs.Umbrella.MinimumLimits[compliance.LimitEachOccurrence],
		"tier 2 umbrella stays at the universal baseline")
	assert.Equal(t, int64(1_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence],
		"masonry does not raise GL minimums")
}

func TestResolve_PlumbingKeepsBaselineWithoutUmbrella(t *testing.T) {
	rs := compliance.ResolveRequirements(compliance.ProjectContext{}, []string{"plumbing"})

	assert.Nil(t, rs.Umbrella, "plumbing does not require umbrella")
	assert.Equal(t, int64(1_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence])
}

// ── Project-type modifiers ────────────────────────────────────────────────────

func TestResolve_HighRiseScalesEveryMinimumByHalfCeil(t *testing.T) {
	rs := compliance.ResolveRequirements(
		compliance.ProjectContext{ProjectType: "high_rise"}, []string{"plumbing"})

	assert.Equal(t, int64(1_500_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence],
		"baseline $1,000,000 x 1.5 = $1,500,000")
	assert.Equal(t, int64(3_000_000), rs.GL.MinimumLimits[compliance.LimitGeneralAggregate])
	assert.Equal(t, int64(1_500_000), rs.WC.MinimumLimits[compliance.LimitEachAccident])
	assert.Equal(t, int64(1_500_000), rs.Auto.MinimumLimits[compliance.LimitCombinedSingleLimit])
}

func TestResolve_HighRiseScalesTradeOverridesToo(t *testing.T) {
	rs := compliance.ResolveRequirements(
		compliance.ProjectContext{ProjectType: "high_rise"}, []string{"roofing"})

	assert.Equal(t, int64(3_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence],
		"tier 3 GL $2,000,000 x 1.5 = $3,000,000")
	assert.Equal(t, int64(7_500_000), rs.Umbrella.MinimumLimits[compliance.LimitEachOccurrence],
		"tier 3 umbrella $5,000,000 x 1.5 = $7,500,000")
}

func TestResolve_CondoAddsNoExclusionConstraint(t *testing.T) {
	rs := compliance.ResolveRequirements(
		compliance.ProjectContext{ProjectType: "condo"}, []string{"drywall"})

	assert.True(t, rs.GL.NoCondoExclusion)
	assert.Equal(t, int64(1_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence],
		"condo modifier does not change numeric minimums")
}

func TestResolve_HazmatAddsPollutionAndRaisesGL(t *testing.T) {
	rs := compliance.ResolveRequirements(
		compliance.ProjectContext{ProjectType: "hazmat"}, []string{"painting"})

	require.NotNil(t, rs.Pollution, "hazmat projects require the pollution line")
	assert.Equal(t, int64(5_000_000), rs.GL.MinimumLimits[compliance.LimitEachOccurrence])
	assert.Equal(t, int64(10_000_000), rs.GL.MinimumLimits[compliance.LimitGeneralAggregate])
	assert.Equal(t, int64(1_000_000), rs.Pollution.MinimumLimits[compliance.LimitEachOccurrence])
	require.NotNil(t, rs.Umbrella, "hazmat expands the required coverage types")
}

func TestTradeTier(t *testing.T) {
	assert.Equal(t, compliance.TierGeneral, compliance.TradeTier("carpentry"))
	assert.Equal(t, compliance.TierSpecialty, compliance.TradeTier("electrical"))
	assert.Equal(t, compliance.TierHighRisk, compliance.TradeTier("crane_operator"))
}
