package compliance

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Trade-coverage validation is a best-effort scan of free-text policy fields.
// Only an explicit match against the fixed exclusion-phrase table below makes
// the result non-compliant; everything else is advisory.

// ExcludedTrade is a required trade matched by a policy exclusion phrase.
type ExcludedTrade struct {
	Trade         string `json:"trade"`
	MatchedPhrase string `json:"matched_phrase"`
}

// ClassificationFinding records a GL classification code that is outside the
// acceptable set for a required trade.
type ClassificationFinding struct {
	Trade           string `json:"trade"`
	ProvidedCode    int    `json:"provided_code"`
	AcceptableCodes []int  `json:"acceptable_codes"`
}

// TradeCoverageResult is the trade validator's output. Compliant is false
// only when a required trade is explicitly excluded by policy text.
type TradeCoverageResult struct {
	Compliant       bool                    `json:"compliant"`
	Issues          []Issue                 `json:"issues"`
	Warnings        []Issue                 `json:"warnings"`
	ExcludedTrades  []ExcludedTrade         `json:"excluded_trades"`
	Classifications []ClassificationFinding `json:"classifications"`
	ReviewNotes     string                  `json:"review_notes"`
}

// tradeExclusionPhrases maps a trade to the policy-text phrases that exclude
// it. Matching is case-insensitive substring over notes + exclusions text.
var tradeExclusionPhrases = map[string][]string{
	"roofing":        {"roofing excluded", "roof work excluded", "roofing operations excluded", "no coverage for roofing"},
	"demolition":     {"demolition excluded", "demolition work excluded", "wrecking excluded"},
	"excavation":     {"excavation excluded", "earth movement excluded", "grading excluded", "underground work excluded"},
	"scaffolding":    {"scaffolding excluded", "work above two stories excluded", "exterior scaffold excluded"},
	"welding":        {"welding excluded", "hot work excluded", "torch work excluded"},
	"waterproofing":  {"waterproofing excluded", "below grade work excluded"},
	"masonry":        {"masonry excluded", "tuckpointing excluded"},
	"crane_operator": {"crane excluded", "crane operations excluded", "hoisting excluded"},
	"steel_erection": {"steel erection excluded", "structural steel excluded"},
}

// tradeClassCodes maps a trade-name substring to the NCCI classification
// codes accepted for it. This is a simplified single-code model, not a full
// NCCI mapping; mismatches are advisory.
var tradeClassCodes = []struct {
	substring string
	codes     []int
}{
	{"roof", []int{5551}},
	{"electric", []int{5190, 5191}},
	{"plumb", []int{5183}},
	{"hvac", []int{5537}},
	{"carpent", []int{5403, 5645}},
	{"drywall", []int{5445}},
	{"paint", []int{5474}},
	{"mason", []int{5022}},
	{"concrete", []int{5213}},
	{"excavat", []int{6217}},
	{"demoli", []int{5701}},
	{"steel", []int{5059}},
	{"landscap", []int{42}},
}

// hiredNonOwnedAutoTrades are trades whose site logistics make hired and
// non-owned auto coverage a practical necessity.
var hiredNonOwnedAutoTrades = map[string]bool{
	"roofing":        true,
	"demolition":     true,
	"excavation":     true,
	"crane_operator": true,
	"steel_erection": true,
	"hauling":        true,
}

// premiumBasisFlags are premium-basis phrasings that usually mean coverage is
// conditional and deserves a closer look.
var premiumBasisFlags = []string{"if any", "per project", "minimum premium only"}

// ValidatePolicyTradeCoverage scans the certificate's free-text policy fields
// for exclusions affecting the required trades, checks the GL classification
// code, and raises advisories for conditional premium bases, inherent
// exclusions, and missing hired/non-owned auto on high-risk trades.
func ValidatePolicyTradeCoverage(coi *COI, requiredTrades []string) *TradeCoverageResult {
	res := &TradeCoverageResult{
		Issues:          []Issue{},
		Warnings:        []Issue{},
		ExcludedTrades:  []ExcludedTrade{},
		Classifications: []ClassificationFinding{},
	}
	if coi == nil {
		coi = &COI{}
	}

	text := strings.ToLower(coi.GLPolicyNotes + " " + coi.GLExclusions)

	for _, raw := range requiredTrades {
		trade := normalizeTrade(raw)

		// Exclusion phrases: first match per trade wins.
		for _, phrase := range tradeExclusionPhrases[trade] {
			if strings.Contains(text, phrase) {
				res.ExcludedTrades = append(res.ExcludedTrades, ExcludedTrade{Trade: trade, MatchedPhrase: phrase})
				res.Issues = append(res.Issues, Issue{
					Type:     IssueTradeExcludedByPolicy,
					Field:    "GL Exclusions",
					Severity: SeverityHigh,
					Message:  fmt.Sprintf("policy text excludes required trade %q", trade),
					Detail:   fmt.Sprintf("matched phrase: %q", phrase),
				})
				break
			}
		}

		// Classification code check.
		if coi.GLClassCode != 0 {
			if codes, ok := acceptableCodesFor(trade); ok && !containsInt(codes, coi.GLClassCode) {
				res.Classifications = append(res.Classifications, ClassificationFinding{
					Trade:           trade,
					ProvidedCode:    coi.GLClassCode,
					AcceptableCodes: codes,
				})
				res.Warnings = append(res.Warnings, Issue{
					Type:     IssueClassCodeMismatch,
					Field:    "GL Classification Code",
					Severity: SeverityMedium,
					Message:  fmt.Sprintf("class code %d is outside the acceptable set for %q", coi.GLClassCode, trade),
					Detail:   "simplified single-code check; confirm with the carrier",
				})
			}
		}

		// Hired/non-owned auto for high-risk trades.
		if hiredNonOwnedAutoTrades[trade] {
			if !coi.AutoHired {
				res.Warnings = append(res.Warnings, Issue{
					Type:     IssueMissingHiredNonOwnedAuto,
					Field:    "Hired Auto",
					Severity: SeverityHigh,
					Message:  fmt.Sprintf("hired auto coverage not shown; expected for trade %q", trade),
				})
			}
			if !coi.AutoNonOwned {
				res.Warnings = append(res.Warnings, Issue{
					Type:     IssueMissingHiredNonOwnedAuto,
					Field:    "Non-Owned Auto",
					Severity: SeverityMedium,
					Message:  fmt.Sprintf("non-owned auto coverage not shown; expected for trade %q", trade),
				})
			}
		}
	}

	// Premium basis and inherent-exclusion text: warnings only, never errors.
	basis := strings.ToLower(coi.PremiumBasis)
	for _, flag := range premiumBasisFlags {
		if strings.Contains(basis, flag) {
			res.Warnings = append(res.Warnings, Issue{
				Type:     IssuePremiumBasisReview,
				Field:    "Premium Basis",
				Severity: SeverityMedium,
				Message:  fmt.Sprintf("premium basis contains %q; coverage may be conditional", flag),
			})
			break
		}
	}
	if strings.TrimSpace(coi.InherentExclusions) != "" {
		res.Warnings = append(res.Warnings, Issue{
			Type:     IssueInherentExclusionReview,
			Field:    "Inherent Exclusions",
			Severity: SeverityMedium,
			Message:  "policy form carries inherent exclusions; review against assigned trades",
			Detail:   coi.InherentExclusions,
		})
	}

	res.Compliant = len(res.Issues) == 0
	res.ReviewNotes = CompileReviewNotes(res)
	return res
}

// ── Per-trade absolute floors ─────────────────────────────────────────────────

// tradeRestriction is a hardcoded numeric floor for one trade, independent of
// the resolved requirement set.
type tradeRestriction struct {
	field    string
	floor    int64
	provided func(*COI) int64
}

var tradeRestrictions = map[string][]tradeRestriction{
	"crane_operator": {
		{"Umbrella Each Occurrence", 3_000_000, func(c *COI) int64 { return c.UmbrellaEachOccurrence }},
	},
	"demolition": {
		{"GL Each Occurrence", 2_000_000, func(c *COI) int64 { return c.GLEachOccurrence }},
	},
	"excavation": {
		{"GL Each Occurrence", 2_000_000, func(c *COI) int64 { return c.GLEachOccurrence }},
	},
	"scaffolding": {
		{"Umbrella Each Occurrence", 2_000_000, func(c *COI) int64 { return c.UmbrellaEachOccurrence }},
	},
	"roofing": {
		{"GL General Aggregate", 2_000_000, func(c *COI) int64 { return c.GLGeneralAggregate }},
	},
}

// ValidateTradeRestrictions applies the hardcoded per-trade floors. These are
// absolute minimums (crane work needs a $3M umbrella no matter the tier) and
// run as an independent pass after the main requirement check.
func ValidateTradeRestrictions(coi *COI, trade string) []Issue {
	if coi == nil {
		coi = &COI{}
	}
	issues := []Issue{}
	for _, r := range tradeRestrictions[normalizeTrade(trade)] {
		provided := r.provided(coi)
		if provided >= r.floor {
			continue
		}
		issues = append(issues, Issue{
			Type:     IssueTradeRestrictionUnmet,
			Field:    r.field,
			Required: r.floor,
			Provided: provided,
			Severity: SeverityError,
			Message:  fmt.Sprintf("trade %q requires %s of at least $%d", trade, r.field, r.floor),
		})
	}
	return issues
}

// ── Operator-facing formatters ────────────────────────────────────────────────

var tradeTitle = cases.Title(language.English)

func displayTrade(trade string) string {
	return tradeTitle.String(strings.ReplaceAll(trade, "_", " "))
}

// GenerateBrokerTradeMessage renders the validator output as the body of a
// broker notification email. Pure formatting, no additional logic.
func GenerateBrokerTradeMessage(res *TradeCoverageResult, brokerName, subcontractorName, projectName string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", brokerName)
	fmt.Fprintf(&b, "Our review of the certificate on file for %s on project %s found items that need your attention:\n\n",
		subcontractorName, projectName)

	if len(res.ExcludedTrades) > 0 {
		b.WriteString("Excluded trades:\n")
		for _, ex := range res.ExcludedTrades {
			fmt.Fprintf(&b, "  - %s (policy text: %q)\n", displayTrade(ex.Trade), ex.MatchedPhrase)
		}
		b.WriteString("\n")
	}
	if len(res.Classifications) > 0 {
		b.WriteString("Classification concerns:\n")
		for _, c := range res.Classifications {
			fmt.Fprintf(&b, "  - %s: certificate shows class code %d, expected one of %v\n",
				displayTrade(c.Trade), c.ProvidedCode, c.AcceptableCodes)
		}
		b.WriteString("\n")
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(&b, "Note: %s\n", w.Message)
	}

	b.WriteString("\nPlease provide an updated certificate or endorsement addressing the above.\n")
	return b.String()
}

// CompileReviewNotes flattens the validator output into an admin-facing
// summary. Pure formatting, no additional logic.
func CompileReviewNotes(res *TradeCoverageResult) string {
	if len(res.Issues) == 0 && len(res.Warnings) == 0 {
		return "No trade coverage concerns found."
	}
	var notes []string
	for _, ex := range res.ExcludedTrades {
		notes = append(notes, fmt.Sprintf("EXCLUDED: %s (%q)", displayTrade(ex.Trade), ex.MatchedPhrase))
	}
	for _, c := range res.Classifications {
		notes = append(notes, fmt.Sprintf("CLASS CODE: %d not acceptable for %s", c.ProvidedCode, displayTrade(c.Trade)))
	}
	for _, w := range res.Warnings {
		if w.Type == IssueClassCodeMismatch {
			continue // already covered by the classification entries
		}
		notes = append(notes, fmt.Sprintf("REVIEW: %s", w.Message))
	}
	return strings.Join(notes, "\n")
}

// ── Helpers ───────────────────────────────────────────────────────────────────

func normalizeTrade(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

func acceptableCodesFor(trade string) ([]int, bool) {
	for _, entry := range tradeClassCodes {
		if strings.Contains(trade, entry.substring) {
			return entry.codes, true
		}
	}
	return nil, false
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
