package coi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
)

func certRequest() *dto.GenerateCOIRequest {
	return &dto.GenerateCOIRequest{
		SubcontractorName: "Apex Plumbing LLC",
		ProjectName:       "Riverside Tower",
		GCName:            "Prime Construction Corp",
		Insurers: []dto.InsurerInfo{
			{Letter: "A", Name: "Hartford Casualty", NAIC: "29424"},
			{Letter: "B", Name: "Travelers Indemnity", NAIC: "25658"},
		},
		Coverages: []dto.CoverageInfo{
			{
				Type:           "Commercial General Liability",
				Insurer:        "A",
				PolicyNumber:   "GL-100200",
				EffectiveDate:  "01/01/2026",
				ExpirationDate: "01/01/2027",
				Limits: map[string]string{
					"Each Occurrence":   "$1,000,000",
					"General Aggregate": "$2,000,000",
				},
			},
			{
				Type:           "Workers Compensation",
				Insurer:        "B",
				PolicyNumber:   "WC-300400",
				ExpirationDate: "06/15/2027",
				Limits: map[string]string{
					"E.L. Each Accident": "$1,000,000",
				},
			},
			{
				Type:           "Automobile Liability",
				Insurer:        "A",
				PolicyNumber:   "CA-500600",
				ExpirationDate: "01/01/2027",
				Limits: map[string]string{
					"Combined Single Limit": "$1,000,000",
					"Hired Autos":           "X",
					"Non-Owned Autos":       "X",
				},
			},
		},
		Description: "Waiver of subrogation applies in favor of the certificate holder.",
	}
}

// The stored snapshot carries the parsed limits, carriers and dates of each
// coverage line.
func TestComplianceSnapshot_CoverageMapping(t *testing.T) {
	coi := complianceSnapshot(certRequest())

	assert.Equal(t, "Hartford Casualty", coi.GLCarrier)
	assert.Equal(t, "GL-100200", coi.GLPolicyNumber)
	assert.Equal(t, int64(1_000_000), coi.GLEachOccurrence)
	assert.Equal(t, int64(2_000_000), coi.GLGeneralAggregate)
	require.NotNil(t, coi.GLExpirationDate)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), *coi.GLExpirationDate)

	assert.Equal(t, "Travelers Indemnity", coi.WCCarrier)
	assert.Equal(t, int64(1_000_000), coi.WCEachAccident)

	assert.Equal(t, int64(1_000_000), coi.AutoCombinedSingleLimit)
	assert.True(t, coi.AutoHired)
	assert.True(t, coi.AutoNonOwned)
}

// The description feeds the free-text scan, the waiver wording sets the
// waiver flags, and the GC lands in the additional insured list.
func TestComplianceSnapshot_DescriptionAndNamedEntities(t *testing.T) {
	coi := complianceSnapshot(certRequest())

	assert.Contains(t, coi.GLPolicyNotes, "Waiver of subrogation")
	assert.True(t, coi.GLWaiverOfSubrogation)
	assert.True(t, coi.WCWaiverOfSubrogation)
	assert.True(t, coi.AutoWaiverOfSubrogation)
	assert.Equal(t, []string{"Prime Construction Corp"}, coi.AdditionalInsured)
}

// Display strings with symbols, cents or junk parse to whole dollars; garbage
// parses to zero and fails the limit checks downstream.
func TestParseMoney(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"$1,000,000", 1_000_000},
		{"$2,000,000.00", 2_000_000},
		{"1000000", 1_000_000},
		{"$ 500,000", 500_000},
		{"included", 0},
		{"", 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, parseMoney(tc.in), "input %q", tc.in)
	}
}

// A request with no coverage rows still yields a snapshot the engine fails
// closed on, never a parse error.
func TestComplianceSnapshot_EmptyRequest(t *testing.T) {
	coi := complianceSnapshot(&dto.GenerateCOIRequest{SubcontractorName: "Apex Plumbing LLC"})

	assert.Zero(t, coi.GLEachOccurrence)
	assert.Nil(t, coi.GLExpirationDate)
	assert.Empty(t, coi.AdditionalInsured)
}
