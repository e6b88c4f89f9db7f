package coi

import (
	"strconv"
	"strings"
	"time"

	"github.com/insuretrack/insuretrack-api/internal/application/dto"
	"github.com/insuretrack/insuretrack-api/internal/domain/compliance"
)

// complianceSnapshot flattens a certificate request into the engine's COI
// shape so later compliance checks can evaluate the certificate on file.
// Limits arrive as display strings ("$1,000,000"); anything unparseable stays
// zero and fails the corresponding limit check.
func complianceSnapshot(in *dto.GenerateCOIRequest) compliance.COI {
	var coi compliance.COI

	carriers := make(map[string]string, len(in.Insurers))
	for _, ins := range in.Insurers {
		carriers[strings.ToUpper(ins.Letter)] = ins.Name
	}

	for _, cov := range in.Coverages {
		carrier := carriers[strings.ToUpper(cov.Insurer)]
		exp := parseCertDate(cov.ExpirationDate)
		kind := strings.ToLower(cov.Type)
		switch {
		case strings.Contains(kind, "umbrella"), strings.Contains(kind, "excess"):
			coi.UmbrellaCarrier = carrier
			coi.UmbrellaPolicyNumber = cov.PolicyNumber
			coi.UmbrellaExpirationDate = exp
			coi.UmbrellaEachOccurrence = limitAmount(cov.Limits, "each occurrence")
			coi.UmbrellaAggregate = limitAmount(cov.Limits, "aggregate")
		case strings.Contains(kind, "workers"):
			coi.WCCarrier = carrier
			coi.WCPolicyNumber = cov.PolicyNumber
			coi.WCExpirationDate = exp
			coi.WCEachAccident = limitAmount(cov.Limits, "each accident")
		case strings.Contains(kind, "auto"):
			coi.AutoCarrier = carrier
			coi.AutoPolicyNumber = cov.PolicyNumber
			coi.AutoExpirationDate = exp
			coi.AutoCombinedSingleLimit = limitAmount(cov.Limits, "combined single")
			for k := range cov.Limits {
				lk := strings.ToLower(k)
				if strings.Contains(lk, "hired") {
					coi.AutoHired = true
				}
				if strings.Contains(lk, "non-owned") || strings.Contains(lk, "non owned") {
					coi.AutoNonOwned = true
				}
			}
		case strings.Contains(kind, "pollution"):
			coi.PollutionExpirationDate = exp
			coi.PollutionEachOccurrence = limitAmount(cov.Limits, "each occurrence")
			coi.PollutionAggregate = limitAmount(cov.Limits, "aggregate")
		case strings.Contains(kind, "general"):
			coi.GLCarrier = carrier
			coi.GLPolicyNumber = cov.PolicyNumber
			coi.GLEffectiveDate = parseCertDate(cov.EffectiveDate)
			coi.GLExpirationDate = exp
			coi.GLEachOccurrence = limitAmount(cov.Limits, "each occurrence")
			coi.GLGeneralAggregate = limitAmount(cov.Limits, "general aggregate", "aggregate")
		}
	}

	// The description block carries the named entities and endorsement wording
	// on a real ACORD 25, so the free-text scans get it verbatim.
	coi.GLPolicyNotes = in.Description
	desc := strings.ToLower(in.Description)
	if strings.Contains(desc, "waiver of subrogation") {
		coi.GLWaiverOfSubrogation = true
		coi.WCWaiverOfSubrogation = true
		coi.AutoWaiverOfSubrogation = true
	}
	if in.GCName != "" {
		coi.AdditionalInsured = []string{in.GCName}
	}
	return coi
}

// limitAmount finds the first limit whose label contains one of the needles,
// in needle order.
func limitAmount(limits map[string]string, needles ...string) int64 {
	for _, needle := range needles {
		for k, v := range limits {
			if strings.Contains(strings.ToLower(k), needle) {
				return parseMoney(v)
			}
		}
	}
	return 0
}

// parseMoney reads a whole-dollar amount out of a display string. Cents are
// truncated.
func parseMoney(s string) int64 {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		s = s[:i]
	}
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, s)
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseCertDate(s string) *time.Time {
	t, err := time.Parse("01/02/2006", s)
	if err != nil {
		return nil
	}
	return &t
}
