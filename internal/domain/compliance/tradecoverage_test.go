package compliance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidatePolicyTradeCoverage — free-text exclusion scanning, classification
// codes, advisory checks. Only an explicit exclusion-phrase match may flip
// the result to non-compliant.
// ──────────────────────────────────────────────────────────────────────────────

func TestTradeCoverage_RoofingExcludedByPolicyText(t *testing.T) {
	coi := &compliance.COI{GLExclusions: "Roofing excluded per form CG 21 53."}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing"})

	assert.False(t, res.Compliant)
	require.Len(t, res.ExcludedTrades, 1)
	assert.Equal(t, "roofing", res.ExcludedTrades[0].Trade)
	assert.Equal(t, "roofing excluded", res.ExcludedTrades[0].MatchedPhrase)

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueTradeExcludedByPolicy, res.Issues[0].Type)
	assert.Equal(t, compliance.SeverityHigh, res.Issues[0].Severity)
}

func TestTradeCoverage_ExclusionScanCoversNotesAndExclusions(t *testing.T) {
	coi := &compliance.COI{GLPolicyNotes: "NOTE: demolition work excluded for this insured."}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"demolition"})

	assert.False(t, res.Compliant)
	require.Len(t, res.ExcludedTrades, 1)
}

func TestTradeCoverage_ExclusionForUnrelatedTradeIsIgnored(t *testing.T) {
	coi := &compliance.COI{GLExclusions: "roofing excluded"}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"plumbing"})

	assert.True(t, res.Compliant, "exclusions only matter for required trades")
	assert.Empty(t, res.ExcludedTrades)
}

func TestTradeCoverage_CleanPolicyTextIsCompliant(t *testing.T) {
	coi := &compliance.COI{
		GLPolicyNotes: "Standard CGL form, no restrictive endorsements.",
		AutoHired:     true,
		AutoNonOwned:  true,
	}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing", "carpentry"})

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Issues)
	assert.Equal(t, "No trade coverage concerns found.", res.ReviewNotes)
}

// ── Classification codes ──────────────────────────────────────────────────────

func TestTradeCoverage_ClassCodeMismatchIsMediumAdvisory(t *testing.T) {
	coi := &compliance.COI{
		GLClassCode:  5190, // electrical wiring
		AutoHired:    true,
		AutoNonOwned: true,
	}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing"})

	assert.True(t, res.Compliant, "a class-code mismatch alone never blocks compliance")
	require.Len(t, res.Classifications, 1)
	assert.Equal(t, 5190, res.Classifications[0].ProvidedCode)
	assert.Equal(t, []int{5551}, res.Classifications[0].AcceptableCodes)

	require.Len(t, res.Warnings, 1)
	assert.Equal(t, compliance.IssueClassCodeMismatch, res.Warnings[0].Type)
	assert.Equal(t, compliance.SeverityMedium, res.Warnings[0].Severity)
}

func TestTradeCoverage_MatchingClassCodeRaisesNothing(t *testing.T) {
	coi := &compliance.COI{GLClassCode: 5551, AutoHired: true, AutoNonOwned: true}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing"})

	assert.Empty(t, res.Classifications)
	assert.Empty(t, res.Warnings)
}

func TestTradeCoverage_ZeroClassCodeSkipsTheCheck(t *testing.T) {
	coi := &compliance.COI{AutoHired: true, AutoNonOwned: true}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"electrical"})

	assert.Empty(t, res.Classifications, "no class code on the certificate means nothing to compare")
}

// ── Advisory scans ────────────────────────────────────────────────────────────

func TestTradeCoverage_ConditionalPremiumBasisWarns(t *testing.T) {
	coi := &compliance.COI{PremiumBasis: "Payroll - If Any basis"}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"carpentry"})

	assert.True(t, res.Compliant)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, compliance.IssuePremiumBasisReview, res.Warnings[0].Type)
}

func TestTradeCoverage_InherentExclusionsWarn(t *testing.T) {
	coi := &compliance.COI{InherentExclusions: "EIFS, subsidence"}

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"carpentry"})

	assert.True(t, res.Compliant)
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, compliance.IssueInherentExclusionReview, res.Warnings[0].Type)
	assert.Equal(t, "EIFS, subsidence", res.Warnings[0].Detail)
}

func TestTradeCoverage_HiredNonOwnedAdvisoriesForHighRiskTrades(t *testing.T) {
	coi := &compliance.COI{} // no auto flags at all

	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"demolition"})

	assert.True(t, res.Compliant, "hired/non-owned gaps are advisory in the trade validator")
	require.Len(t, res.Warnings, 2)

	bySeverity := map[compliance.Severity]int{}
	for _, w := range res.Warnings {
		assert.Equal(t, compliance.IssueMissingHiredNonOwnedAuto, w.Type)
		bySeverity[w.Severity]++
	}
	assert.Equal(t, 1, bySeverity[compliance.SeverityHigh], "missing hired auto is high severity")
	assert.Equal(t, 1, bySeverity[compliance.SeverityMedium], "missing non-owned auto is medium severity")
}

func TestTradeCoverage_LowRiskTradeSkipsAutoAdvisories(t *testing.T) {
	res := compliance.ValidatePolicyTradeCoverage(&compliance.COI{}, []string{"painting"})

	assert.Empty(t, res.Warnings)
}

// ── Per-trade absolute floors ─────────────────────────────────────────────────

func TestTradeRestrictions_CraneNeedsThreeMillionUmbrella(t *testing.T) {
	coi := &compliance.COI{UmbrellaEachOccurrence: 2_000_000}

	issues := compliance.ValidateTradeRestrictions(coi, "crane_operator")

	require.Len(t, issues, 1)
	assert.Equal(t, compliance.IssueTradeRestrictionUnmet, issues[0].Type)
	assert.Equal(t, int64(3_000_000), issues[0].Required)
	assert.Equal(t, int64(2_000_000), issues[0].Provided)
}

func TestTradeRestrictions_FloorMetRaisesNothing(t *testing.T) {
	coi := &compliance.COI{UmbrellaEachOccurrence: 3_000_000}

	issues := compliance.ValidateTradeRestrictions(coi, "crane_operator")
	assert.Empty(t, issues)
}

func TestTradeRestrictions_IndependentOfResolvedRequirements(t *testing.T) {
	// Demolition floor applies even though the COI satisfies the universal
	// baseline: restrictions are absolute, not tier-derived.
	coi := &compliance.COI{GLEachOccurrence: 1_000_000}

	issues := compliance.ValidateTradeRestrictions(coi, "demolition")

	require.Len(t, issues, 1)
	assert.Equal(t, int64(2_000_000), issues[0].Required)
}

func TestTradeRestrictions_UnrestrictedTradeHasNoFloors(t *testing.T) {
	assert.Empty(t, compliance.ValidateTradeRestrictions(&compliance.COI{}, "painting"))
}

// ── Formatters ────────────────────────────────────────────────────────────────

func TestGenerateBrokerTradeMessage(t *testing.T) {
	coi := &compliance.COI{GLExclusions: "roofing excluded", GLClassCode: 5190}
	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing"})

	msg := compliance.GenerateBrokerTradeMessage(res, "Jordan Meyer", "Apex Roofing LLC", "Downtown Office Tower")

	assert.Contains(t, msg, "Jordan Meyer")
	assert.Contains(t, msg, "Apex Roofing LLC")
	assert.Contains(t, msg, "Downtown Office Tower")
	assert.Contains(t, msg, "Roofing", "trade names are title-cased for the operator")
	assert.Contains(t, msg, "roofing excluded")
}

func TestCompileReviewNotes(t *testing.T) {
	coi := &compliance.COI{
		GLExclusions:       "roofing excluded",
		InherentExclusions: "EIFS",
	}
	res := compliance.ValidatePolicyTradeCoverage(coi, []string{"roofing"})

	assert.Contains(t, res.ReviewNotes, "EXCLUDED: Roofing")
	assert.Contains(t, res.ReviewNotes, "REVIEW:")
}
