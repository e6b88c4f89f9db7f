package compliance

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Policies expiring within this many days get a POLICY_EXPIRING_SOON warning.
const expiringSoonWindowDays = 30

// ValidateCOICompliance checks a certificate against the requirement set
// resolved for the project and its trades. It never returns an error: absent
// or malformed fields count as "requirement not met" (fail-closed).
func ValidateCOICompliance(coi *COI, project ProjectContext, subTrades []string) *Result {
	return ValidateCOIComplianceAt(coi, project, subTrades, time.Now())
}

// ValidateCOIComplianceAt is ValidateCOICompliance with an explicit "now",
// used by the expiration checks.
func ValidateCOIComplianceAt(coi *COI, project ProjectContext, subTrades []string, now time.Time) *Result {
	req := ResolveRequirements(project, subTrades)
	res := &Result{
		Issues:              []Issue{},
		Warnings:            []Issue{},
		RequirementsApplied: req,
	}
	if coi == nil {
		coi = &COI{}
	}

	checkGeneralLiability(coi, req.GL, res)
	checkUmbrella(coi, req.Umbrella, res)
	checkWorkersComp(coi, req.WC, res)
	checkAuto(coi, req.Auto, res)
	checkPollution(coi, req.Pollution, res)

	checkAdditionalInsured(coi, req.GL, project.AdditionalInsured, res)
	checkExclusionFlags(coi, res)
	checkExpirations(coi, now, res)

	res.Compliant = len(res.Issues) == 0
	return res
}

// ── Per-line checks (explicit, one function per coverage line) ────────────────

func checkGeneralLiability(coi *COI, req *LineRequirement, res *Result) {
	if req == nil {
		return
	}
	checkLimit(res, IssueGLLimitInsufficient, "GL Each Occurrence",
		req.MinimumLimits[LimitEachOccurrence], coi.GLEachOccurrence)
	checkLimit(res, IssueGLLimitInsufficient, "GL General Aggregate",
		req.MinimumLimits[LimitGeneralAggregate], coi.GLGeneralAggregate)

	for _, code := range req.Endorsements {
		if !hasEndorsement(coi.GLEndorsements, code) {
			res.addIssue(Issue{
				Type:     IssueMissingEndorsement,
				Field:    "GL Endorsement " + code,
				Severity: SeverityError,
				Message:  fmt.Sprintf("required endorsement %s not found on certificate", code),
			})
		}
	}

	if req.WaiverOfSubrogation && !coi.GLWaiverOfSubrogation {
		res.addIssue(Issue{
			Type:     IssueMissingWaiver,
			Field:    "GL Waiver of Subrogation",
			Severity: SeverityError,
			Message:  "waiver of subrogation required on general liability",
		})
	}
}

func checkUmbrella(coi *COI, req *LineRequirement, res *Result) {
	if req == nil {
		return
	}
	checkLimit(res, IssueUmbrellaLimitInsufficient, "Umbrella Each Occurrence",
		req.MinimumLimits[LimitEachOccurrence], coi.UmbrellaEachOccurrence)
	checkLimit(res, IssueUmbrellaLimitInsufficient, "Umbrella Aggregate",
		req.MinimumLimits[LimitAggregate], coi.UmbrellaAggregate)

	if req.WaiverOfSubrogation && !coi.UmbrellaWaiverOfSubrogation {
		res.addIssue(Issue{
			Type:     IssueMissingWaiverOfExcess,
			Field:    "Umbrella Waiver of Subrogation",
			Severity: SeverityError,
			Message:  "waiver of subrogation required on umbrella/excess",
		})
	}
	if req.FollowForm && !coi.UmbrellaFollowForm {
		res.addIssue(Issue{
			Type:     IssueMissingFollowForm,
			Field:    "Umbrella Follow Form",
			Severity: SeverityError,
			Message:  "umbrella must follow form over underlying policies",
		})
	}
}

func checkWorkersComp(coi *COI, req *LineRequirement, res *Result) {
	if req == nil {
		return
	}
	checkLimit(res, IssueWCLimitInsufficient, "WC Each Accident",
		req.MinimumLimits[LimitEachAccident], coi.WCEachAccident)

	if req.WaiverOfSubrogation && !coi.WCWaiverOfSubrogation {
		res.addIssue(Issue{
			Type:     IssueMissingWaiver,
			Field:    "WC Waiver of Subrogation",
			Severity: SeverityError,
			Message:  "waiver of subrogation required on workers' compensation",
		})
	}
}

func checkAuto(coi *COI, req *LineRequirement, res *Result) {
	if req == nil {
		return
	}
	checkLimit(res, IssueAutoLimitInsufficient, "Auto Combined Single Limit",
		req.MinimumLimits[LimitCombinedSingleLimit], coi.AutoCombinedSingleLimit)

	if req.WaiverOfSubrogation && !coi.AutoWaiverOfSubrogation {
		res.addIssue(Issue{
			Type:     IssueMissingWaiver,
			Field:    "Auto Waiver of Subrogation",
			Severity: SeverityError,
			Message:  "waiver of subrogation required on auto liability",
		})
	}
	if req.HiredNonOwnedAuto && !(coi.AutoHired && coi.AutoNonOwned) {
		res.addIssue(Issue{
			Type:     IssueMissingHiredNonOwnedAuto,
			Field:    "Hired & Non-Owned Auto",
			Severity: SeverityError,
			Message:  "hired and non-owned auto coverage required",
		})
	}
}

func checkPollution(coi *COI, req *LineRequirement, res *Result) {
	if req == nil {
		return
	}
	checkLimit(res, IssuePollutionLimitInsufficient, "Pollution Each Occurrence",
		req.MinimumLimits[LimitEachOccurrence], coi.PollutionEachOccurrence)
	checkLimit(res, IssuePollutionLimitInsufficient, "Pollution Aggregate",
		req.MinimumLimits[LimitAggregate], coi.PollutionAggregate)
}

// ── Cross-line checks ─────────────────────────────────────────────────────────

// checkAdditionalInsured: no additional insured at all is an error; a named
// required entity missing from the list is only a warning, because name
// matching is approximate and an admin must review it.
func checkAdditionalInsured(coi *COI, glReq *LineRequirement, requiredNames []string, res *Result) {
	if glReq == nil || !glReq.AdditionalInsuredRequired {
		return
	}
	if len(coi.AdditionalInsured) == 0 {
		res.addIssue(Issue{
			Type:     IssueMissingAdditionalInsured,
			Field:    "Additional Insured",
			Severity: SeverityError,
			Message:  "certificate lists no additional insured entities",
		})
		return
	}
	for _, name := range requiredNames {
		if !matchesAnyInsured(coi.AdditionalInsured, name) {
			res.addWarning(Issue{
				Type:     IssueMissingNamedInsured,
				Field:    "Additional Insured",
				Severity: SeverityWarning,
				Message:  fmt.Sprintf("required entity %q not matched on the additional insured list", name),
				Detail:   "name matching is case-insensitive substring; verify manually",
			})
		}
	}
}

// checkExclusionFlags: condo and project-area exclusions on the certificate
// are absolute errors regardless of requirement tier.
func checkExclusionFlags(coi *COI, res *Result) {
	if coi.GLCondoExclusion {
		res.addIssue(Issue{
			Type:     IssueCondoExclusionPresent,
			Field:    "GL Condo Exclusion",
			Severity: SeverityError,
			Message:  "policy carries a condominium exclusion",
		})
	}
	if coi.GLProjectAreaExclusion {
		res.addIssue(Issue{
			Type:     IssueProjectAreaExclusion,
			Field:    "GL Project Area Exclusion",
			Severity: SeverityError,
			Message:  "policy excludes the project area",
		})
	}
}

// checkExpirations classifies every line with a known expiration date.
// A missing date raises nothing; that gap is by the certificate's nature,
// callers needing a date must require one upstream.
func checkExpirations(coi *COI, now time.Time, res *Result) {
	checkExpiration(res, "GL Expiration", coi.GLExpirationDate, now)
	checkExpiration(res, "Umbrella Expiration", coi.UmbrellaExpirationDate, now)
	checkExpiration(res, "WC Expiration", coi.WCExpirationDate, now)
	checkExpiration(res, "Auto Expiration", coi.AutoExpirationDate, now)
	checkExpiration(res, "Pollution Expiration", coi.PollutionExpirationDate, now)
}

func checkExpiration(res *Result, field string, exp *time.Time, now time.Time) {
	if exp == nil {
		return
	}
	if exp.Before(now) {
		res.addIssue(Issue{
			Type:     IssuePolicyExpired,
			Field:    field,
			Severity: SeverityError,
			Message:  fmt.Sprintf("policy expired on %s", exp.Format("2006-01-02")),
		})
		return
	}
	days := int(math.Ceil(exp.Sub(now).Hours() / 24))
	if days <= expiringSoonWindowDays {
		res.addWarning(Issue{
			Type:            IssuePolicyExpiringSoon,
			Field:           field,
			Severity:        SeverityWarning,
			Message:         fmt.Sprintf("policy expires in %d days", days),
			DaysUntilExpiry: days,
		})
	}
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func (r *Result) addIssue(i Issue)   { r.Issues = append(r.Issues, i) }
func (r *Result) addWarning(i Issue) { r.Warnings = append(r.Warnings, i) }

// checkLimit compares provided >= required. Zero/absent provided values fail;
// a requirement of zero means the sub-limit is not in effect.
func checkLimit(res *Result, issueType, field string, required, provided int64) {
	if required <= 0 {
		return
	}
	if provided >= required {
		return
	}
	res.addIssue(Issue{
		Type:     issueType,
		Field:    field,
		Required: required,
		Provided: provided,
		Severity: SeverityError,
		Message:  fmt.Sprintf("%s of $%d is below the required $%d", field, provided, required),
	})
}

func hasEndorsement(endorsements []string, code string) bool {
	for _, e := range endorsements {
		if strings.EqualFold(strings.TrimSpace(e), code) {
			return true
		}
	}
	return false
}

func matchesAnyInsured(listed []string, required string) bool {
	req := strings.ToLower(strings.TrimSpace(required))
	if req == "" {
		return true
	}
	for _, l := range listed {
		if strings.Contains(strings.ToLower(l), req) {
			return true
		}
	}
	return false
}
