package compliance_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// ──────────────────────────────────────────────────────────────────────────────
// ValidateCOICompliance — end-to-end verdicts, field checks, expiration
// classification. All tests pin "now" through ValidateCOIComplianceAt so the
// 30-day boundary is deterministic.
// ──────────────────────────────────────────────────────────────────────────────

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func daysFromNow(d int) *time.Time {
	ts := testNow.Add(time.Duration(d) * 24 * time.Hour)
	return &ts
}

// compliantCOI returns a certificate that fully satisfies the plumbing
// (tier 2, no umbrella) requirement set with expirations 45 days out.
func compliantCOI() *compliance.COI {
	return &compliance.COI{
		GLEachOccurrence:        1_000_000,
		GLGeneralAggregate:      2_000_000,
		GLExpirationDate:        daysFromNow(45),
		GLWaiverOfSubrogation:   true,
		GLEndorsements:          []string{"CG2010", "CG2037"},
		WCEachAccident:          1_000_000,
		WCExpirationDate:        daysFromNow(45),
		WCWaiverOfSubrogation:   true,
		AutoCombinedSingleLimit: 1_000_000,
		AutoExpirationDate:      daysFromNow(45),
		AutoWaiverOfSubrogation: true,
		AutoHired:               true,
		AutoNonOwned:            true,
		AdditionalInsured:       []string{"Prime Construction Corp"},
	}
}

func validate(coi *compliance.COI, project compliance.ProjectContext, trades []string) *compliance.Result {
	return compliance.ValidateCOIComplianceAt(coi, project, trades, testNow)
}

// Scenario: fully sufficient certificate → compliant with no findings.
func TestValidate_FullyCompliantCertificate(t *testing.T) {
	res := validate(compliantCOI(), compliance.ProjectContext{}, []string{"plumbing"})

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
	require.NotNil(t, res.RequirementsApplied, "the applied requirement set is part of the report")
}

// Scenario: GL each occurrence below the $1M baseline → exactly one error.
func TestValidate_GLLimitBelowBaseline(t *testing.T) {
	coi := compliantCOI()
	coi.GLEachOccurrence = 500_000

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	assert.False(t, res.Compliant)
	require.Len(t, res.Issues, 1, "only the GL each occurrence check should fail")
	issue := res.Issues[0]
	assert.Equal(t, compliance.IssueGLLimitInsufficient, issue.Type)
	assert.Equal(t, int64(1_000_000), issue.Required)
	assert.Equal(t, int64(500_000), issue.Provided)
	assert.Equal(t, compliance.SeverityError, issue.Severity)
}

// Missing/absent numeric fields must always produce an error, never be
// silently skipped.
func TestValidate_AbsentNumericFieldsFail(t *testing.T) {
	res := validate(&compliance.COI{}, compliance.ProjectContext{}, []string{"carpentry"})

	assert.False(t, res.Compliant)

	types := issueTypes(res.Issues)
	assert.Contains(t, types, compliance.IssueGLLimitInsufficient)
	assert.Contains(t, types, compliance.IssueWCLimitInsufficient)
	assert.Contains(t, types, compliance.IssueAutoLimitInsufficient)

	for _, i := range res.Issues {
		if i.Type == compliance.IssueGLLimitInsufficient {
			assert.Equal(t, int64(0), i.Provided, "absent values are reported as zero")
		}
	}
}

// The zero "provided" of an absent-field failure must survive into the
// serialized report instead of being dropped from the JSON.
func TestValidate_AbsentFieldKeepsProvidedZeroInJSON(t *testing.T) {
	coi := compliantCOI()
	coi.WCEachAccident = 0
	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	data, err := json.Marshal(res)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"provided":0`)
	assert.Contains(t, string(data), `"required":1000000`)
}

func TestValidate_NilCOIIsFailClosed(t *testing.T) {
	res := compliance.ValidateCOIComplianceAt(nil, compliance.ProjectContext{}, nil, testNow)

	assert.False(t, res.Compliant, "a missing certificate can never be compliant")
	assert.NotEmpty(t, res.Issues)
}

// ── Endorsements and flags ────────────────────────────────────────────────────

func TestValidate_MissingEndorsement(t *testing.T) {
	coi := compliantCOI()
	coi.GLEndorsements = []string{"CG2010"} // CG2037 missing

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueMissingEndorsement, res.Issues[0].Type)
	assert.Contains(t, res.Issues[0].Field, "CG2037")
}

func TestValidate_EndorsementMatchIsCaseInsensitive(t *testing.T) {
	coi := compliantCOI()
	coi.GLEndorsements = []string{"cg2010", " cg2037 "}

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})
	assert.True(t, res.Compliant)
}

func TestValidate_MissingWaivers(t *testing.T) {
	coi := compliantCOI()
	coi.GLWaiverOfSubrogation = false
	coi.WCWaiverOfSubrogation = false

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 2)
	for _, i := range res.Issues {
		assert.Equal(t, compliance.IssueMissingWaiver, i.Type)
	}
}

func TestValidate_MissingHiredNonOwnedAuto(t *testing.T) {
	coi := compliantCOI()
	coi.AutoNonOwned = false

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueMissingHiredNonOwnedAuto, res.Issues[0].Type)
}

func TestValidate_UmbrellaChecksForHighRiskTrade(t *testing.T) {
	coi := compliantCOI()
	coi.GLEachOccurrence = 2_000_000
	coi.GLGeneralAggregate = 4_000_000
	// No umbrella fields on the certificate at all.

	res := validate(coi, compliance.ProjectContext{}, []string{"roofing"})

	types := issueTypes(res.Issues)
	assert.Contains(t, types, compliance.IssueUmbrellaLimitInsufficient)
	assert.Contains(t, types, compliance.IssueMissingFollowForm)
	assert.Contains(t, types, compliance.IssueMissingWaiverOfExcess)
}

// ── Additional insured ────────────────────────────────────────────────────────

func TestValidate_EmptyAdditionalInsuredIsError(t *testing.T) {
	coi := compliantCOI()
	coi.AdditionalInsured = nil

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueMissingAdditionalInsured, res.Issues[0].Type)
}

func TestValidate_UnmatchedNamedInsuredIsOnlyAWarning(t *testing.T) {
	coi := compliantCOI()
	project := compliance.ProjectContext{AdditionalInsured: []string{"Hudson Lenders LLC"}}

	res := validate(coi, project, []string{"plumbing"})

	assert.True(t, res.Compliant, "an unmatched named entity must not block compliance")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, compliance.IssueMissingNamedInsured, res.Warnings[0].Type)
}

func TestValidate_NamedInsuredSubstringMatch(t *testing.T) {
	coi := compliantCOI()
	coi.AdditionalInsured = []string{"Prime Construction Corp and its affiliates"}
	project := compliance.ProjectContext{AdditionalInsured: []string{"prime construction"}}

	res := validate(coi, project, []string{"plumbing"})

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Warnings, "case-insensitive substring match should satisfy the named entity")
}

// ── Exclusion flags (absolute rules) ──────────────────────────────────────────

func TestValidate_CondoExclusionFlagIsAlwaysAnError(t *testing.T) {
	coi := compliantCOI()
	coi.GLCondoExclusion = true

	// Not even a condo project: the flag is an absolute rule.
	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueCondoExclusionPresent, res.Issues[0].Type)
}

func TestValidate_ProjectAreaExclusionFlag(t *testing.T) {
	coi := compliantCOI()
	coi.GLProjectAreaExclusion = true

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssueProjectAreaExclusion, res.Issues[0].Type)
}

// ── Expiration classification ─────────────────────────────────────────────────

func TestValidate_ExpiredPolicyIsError(t *testing.T) {
	coi := compliantCOI()
	coi.GLExpirationDate = daysFromNow(-1)

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	assert.False(t, res.Compliant)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, compliance.IssuePolicyExpired, res.Issues[0].Type)
}

func TestValidate_ExpiringExactlyAt30DaysIsWarning(t *testing.T) {
	coi := compliantCOI()
	coi.GLExpirationDate = daysFromNow(30)

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	assert.True(t, res.Compliant, "an expiring-soon warning never blocks compliance")
	require.Len(t, res.Warnings, 1)
	assert.Equal(t, compliance.IssuePolicyExpiringSoon, res.Warnings[0].Type)
	assert.Equal(t, 30, res.Warnings[0].DaysUntilExpiry)
}

func TestValidate_Expiring31DaysOutRaisesNothing(t *testing.T) {
	coi := compliantCOI()
	coi.GLExpirationDate = daysFromNow(31)

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Warnings)
}

func TestValidate_MissingExpirationDateIsSilentlySkipped(t *testing.T) {
	coi := compliantCOI()
	coi.GLExpirationDate = nil

	res := validate(coi, compliance.ProjectContext{}, []string{"plumbing"})

	assert.True(t, res.Compliant)
	assert.Empty(t, res.Issues)
	assert.Empty(t, res.Warnings)
}

// ── helper ────────────────────────────────────────────────────────────────────

func issueTypes(issues []compliance.Issue) []string {
	types := make([]string, 0, len(issues))
	for _, i := range issues {
		types = append(types, i.Type)
	}
	return types
}
