package model

import "time"

// Review status values an application moves through in the human workflow.
// These are distinct from the AI decision label in ApplicationStatus.
const (
	ReviewStatusPending  = "Review Pending"
	ReviewStatusAwaiting = "Awaiting Instructions"
	ReviewStatusApproved = "Approved"
	ReviewStatusRejected = "Rejected"
)

// ValidReviewStatus reports whether s is one of the four workflow states.
func ValidReviewStatus(s string) bool {
	switch s {
	case ReviewStatusPending, ReviewStatusAwaiting, ReviewStatusApproved, ReviewStatusRejected:
		return true
	}
	return false
}

// Application is one commercial loan-review case.
// This is a pure domain model with no database-specific dependencies or tags.
// The embedded Analysis block keeps the wire format flat, matching the shape
// stored in the record store.
type Application struct {
	ID                string `json:"id"`
	ApplicationNo     string `json:"application_no"`
	ApplicantName     string `json:"applicant_name"`
	Industry          string `json:"industry"`
	LoanAmount        int64  `json:"loan_amount"`
	LoanAmountDisplay string `json:"loan_amount_display"`
	LegalEntityType   string `json:"legal_entity_type"`
	ApplicationStage  string `json:"application_stage"`
	DocumentsStatus   string `json:"documents_status"`
	ApplicationStatus string `json:"application_status"`
	ReviewStatus      string `json:"review_status"`
	IsOverdue         bool   `json:"is_overdue"`

	Analysis

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Analysis is the AI-generated analysis payload attached to an application.
// The service layer passes it through unmodified; only the seed generator
// and the chat context assembler ever look inside.
type Analysis struct {
	AIRecommendation        Recommendation    `json:"ai_recommendation"`
	CompanyInsights         []string          `json:"company_insights"`
	KeyRatios               KeyRatios         `json:"key_ratios"`
	CovenantRecommendations []Covenant        `json:"covenant_recommendations"`
	Documents               []DocumentCheck   `json:"documents"`
	ApplicationSummary      string            `json:"application_summary"`
	InsightsSynthesis       string            `json:"insights_synthesis"`
	FinancialAnalysis       FinancialAnalysis `json:"financial_analysis"`
	MacroAnalysis           MacroAnalysis     `json:"macro_analysis"`
}

// Recommendation is the AI agent's suggested action for an application.
type Recommendation struct {
	Action string `json:"action"`
	Notes  string `json:"notes"`
}

// KeyRatios holds the credit ratio time series shown on the workbench.
type KeyRatios struct {
	DebtToEquity     []RatioPoint `json:"debt_to_equity"`
	InterestCoverage []RatioPoint `json:"interest_coverage"`
}

// RatioPoint is one fiscal-year observation of a financial ratio.
type RatioPoint struct {
	Year  string  `json:"year"`
	Value float64 `json:"value"`
}

// Covenant is a single suggested loan covenant.
type Covenant struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
}

// DocumentCheck is one entry of the submitted-documents checklist.
// Status is verified, warning, or missing.
type DocumentCheck struct {
	Name   string `json:"name"`
	Status string `json:"status"`
}

// FinancialAnalysis is the narrative plus revenue/margin history.
type FinancialAnalysis struct {
	Summary    string          `json:"summary"`
	Financials []FinancialYear `json:"financials"`
}

// FinancialYear is one year of revenue (in $B) and operating margin (%).
type FinancialYear struct {
	Year            string  `json:"year"`
	Amount          float64 `json:"amount"`
	OperatingMargin float64 `json:"operating_margin"`
}

// MacroAnalysis is the industry-level competitive assessment.
type MacroAnalysis struct {
	Summary       string        `json:"summary"`
	PortersForces PortersForces `json:"porters_forces"`
}

// PortersForces scores the five competitive forces for the applicant's industry.
type PortersForces struct {
	BuyerPower         Force `json:"buyer_power"`
	SupplierPower      Force `json:"supplier_power"`
	ThreatNewEntrants  Force `json:"threat_new_entrants"`
	ThreatSubstitutes  Force `json:"threat_substitutes"`
	CompetitiveRivalry Force `json:"competitive_rivalry"`
}

// Force is one competitive-forces score (1 = weakest, 5 = strongest).
type Force struct {
	Score       int    `json:"score"`
	Description string `json:"description"`
}
