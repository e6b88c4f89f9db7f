// Package compliance contains the insurance-requirement rules for the
// platform: resolving the effective requirement set for a project and its
// trades, checking a certificate of insurance against it, and scanning policy
// text for trade exclusions. Everything here is a pure function of its
// inputs; findings are returned as data, never as errors.
package compliance

import (
	"reflect"
	"time"
)

// Severity levels for findings. The compliance engine emits error/warning;
// the trade-coverage validator emits high/medium advisories.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityHigh    Severity = "high"
	SeverityMedium  Severity = "medium"
)

// Finding type codes. Errors block compliance; warnings never do.
const (
	IssueGLLimitInsufficient        = "GL_LIMIT_INSUFFICIENT"
	IssueUmbrellaLimitInsufficient  = "UMBRELLA_LIMIT_INSUFFICIENT"
	IssueWCLimitInsufficient        = "WC_LIMIT_INSUFFICIENT"
	IssueAutoLimitInsufficient      = "AUTO_LIMIT_INSUFFICIENT"
	IssuePollutionLimitInsufficient = "POLLUTION_LIMIT_INSUFFICIENT"
	IssueMissingEndorsement         = "MISSING_ENDORSEMENT"
	IssueMissingWaiver              = "MISSING_WAIVER_OF_SUBROGATION"
	IssueMissingWaiverOfExcess      = "MISSING_WAIVER_OF_EXCESS"
	IssueMissingFollowForm          = "MISSING_FOLLOW_FORM"
	IssueMissingHiredNonOwnedAuto   = "MISSING_HIRED_NON_OWNED_AUTO"
	IssueMissingAdditionalInsured   = "MISSING_ADDITIONAL_INSURED"
	IssueMissingNamedInsured        = "MISSING_NAMED_INSURED"
	IssueCondoExclusionPresent      = "CONDO_EXCLUSION_PRESENT"
	IssueProjectAreaExclusion       = "PROJECT_AREA_EXCLUSION_PRESENT"
	IssuePolicyExpired              = "POLICY_EXPIRED"
	IssuePolicyExpiringSoon         = "POLICY_EXPIRING_SOON"
	IssueTradeExcludedByPolicy      = "TRADE_EXCLUDED_BY_POLICY"
	IssueClassCodeMismatch          = "CLASS_CODE_MISMATCH"
	IssuePremiumBasisReview         = "PREMIUM_BASIS_REVIEW"
	IssueInherentExclusionReview    = "INHERENT_EXCLUSION_REVIEW"
	IssueTradeRestrictionUnmet      = "TRADE_RESTRICTION_UNMET"
)

// Issue is one compliance finding. Required/Provided are set only for
// numeric limit checks; DaysUntilExpiry only for expiration warnings.
type Issue struct {
	Type            string   `json:"type"`
	Field           string   `json:"field"`
	Required        int64    `json:"required"`
	Provided        int64    `json:"provided"`
	Severity        Severity `json:"severity"`
	Message         string   `json:"message,omitempty"`
	Detail          string   `json:"detail,omitempty"`
	DaysUntilExpiry int      `json:"days_until_expiry,omitempty"`
}

// COI is a flat snapshot of one subcontractor's insurance for a project.
// Numeric limits use zero for "not provided": the engine compares with >=,
// so an absent limit always fails its check. Nil dates are skipped by the
// expiration check.
type COI struct {
	// General Liability
	GLCarrier              string     `json:"gl_carrier,omitempty"`
	GLPolicyNumber         string     `json:"gl_policy_number,omitempty"`
	GLEachOccurrence       int64      `json:"gl_each_occurrence,omitempty"`
	GLGeneralAggregate     int64      `json:"gl_general_aggregate,omitempty"`
	GLEffectiveDate        *time.Time `json:"gl_effective_date,omitempty"`
	GLExpirationDate       *time.Time `json:"gl_expiration_date,omitempty"`
	GLWaiverOfSubrogation  bool       `json:"gl_waiver_of_subrogation,omitempty"`
	GLEndorsements         []string   `json:"gl_endorsements,omitempty"`
	GLCondoExclusion       bool       `json:"gl_condo_exclusion,omitempty"`
	GLProjectAreaExclusion bool       `json:"gl_project_area_exclusion,omitempty"`

	// Umbrella / excess
	UmbrellaCarrier             string     `json:"umbrella_carrier,omitempty"`
	UmbrellaPolicyNumber        string     `json:"umbrella_policy_number,omitempty"`
	UmbrellaEachOccurrence      int64      `json:"umbrella_each_occurrence,omitempty"`
	UmbrellaAggregate           int64      `json:"umbrella_aggregate,omitempty"`
	UmbrellaExpirationDate      *time.Time `json:"umbrella_expiration_date,omitempty"`
	UmbrellaWaiverOfSubrogation bool       `json:"umbrella_waiver_of_subrogation,omitempty"`
	UmbrellaFollowForm          bool       `json:"umbrella_follow_form,omitempty"`

	// Workers' Compensation
	WCCarrier             string     `json:"wc_carrier,omitempty"`
	WCPolicyNumber        string     `json:"wc_policy_number,omitempty"`
	WCEachAccident        int64      `json:"wc_each_accident,omitempty"`
	WCExpirationDate      *time.Time `json:"wc_expiration_date,omitempty"`
	WCWaiverOfSubrogation bool       `json:"wc_waiver_of_subrogation,omitempty"`

	// Auto liability
	AutoCarrier             string     `json:"auto_carrier,omitempty"`
	AutoPolicyNumber        string     `json:"auto_policy_number,omitempty"`
	AutoCombinedSingleLimit int64      `json:"auto_combined_single_limit,omitempty"`
	AutoExpirationDate      *time.Time `json:"auto_expiration_date,omitempty"`
	AutoWaiverOfSubrogation bool       `json:"auto_waiver_of_subrogation,omitempty"`
	AutoHired               bool       `json:"auto_hired,omitempty"`
	AutoNonOwned            bool       `json:"auto_non_owned,omitempty"`

	// Pollution liability (hazmat projects)
	PollutionEachOccurrence int64      `json:"pollution_each_occurrence,omitempty"`
	PollutionAggregate      int64      `json:"pollution_aggregate,omitempty"`
	PollutionExpirationDate *time.Time `json:"pollution_expiration_date,omitempty"`

	// Named entities on the certificate
	AdditionalInsured []string `json:"additional_insured,omitempty"`

	// Free text, used only by the trade-coverage validator
	GLPolicyNotes      string `json:"gl_policy_notes,omitempty"`
	GLExclusions       string `json:"gl_exclusions,omitempty"`
	PremiumBasis       string `json:"premium_basis,omitempty"`
	InherentExclusions string `json:"inherent_exclusions,omitempty"`
	GLClassCode        int    `json:"gl_class_code,omitempty"`
}

// Empty reports whether the snapshot carries no certificate data at all.
func (c *COI) Empty() bool {
	if c == nil {
		return true
	}
	return reflect.DeepEqual(*c, COI{})
}

// ProjectContext is the slice of a project the engine needs.
type ProjectContext struct {
	ProjectType       string   // condo | high_rise | hazmat | ""
	AdditionalInsured []string // entities that must be named on the certificate
}

// Result is the outcome of a full compliance check. Compliant is true iff
// Issues is empty; Warnings never affect it.
type Result struct {
	Compliant           bool            `json:"compliant"`
	Issues              []Issue         `json:"issues"`
	Warnings            []Issue         `json:"warnings"`
	RequirementsApplied *RequirementSet `json:"requirements_applied"`
}
