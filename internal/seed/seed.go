// Package seed produces the fixed demo dataset the workbench is initialized
// with. Applications is a pure function: no I/O, no external input. Each call
// returns logically equivalent records with fresh identities and timestamps.
package seed

import (
	"time"

	"github.com/google/uuid"

	"lendapi/internal/model"
)

// Applications returns the canonical seed set of loan applications.
// Review-status distribution is fixed: 4 pending (2 overdue), 2 awaiting
// instructions (1 overdue), 2 completed (0 overdue). Tests depend on these
// counts.
func Applications() []model.Application {
	now := time.Now().UTC()

	apps := []model.Application{
		{
			ApplicationNo:     "CL-3310",
			ApplicantName:     "Tesla",
			Industry:          "Automotive",
			LoanAmount:        100000000,
			LoanAmountDisplay: "$100 M",
			LegalEntityType:   "Public",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "verified",
			ApplicationStatus: "AI Approved",
			ReviewStatus:      model.ReviewStatusPending,
			IsOverdue:         true,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Approve Loan",
					Notes:  "Approve loan with stringent covenants",
				},
				CompanyInsights: []string{
					"Financial trajectory: 34.1% revenue CAGR (2021-2023) with $15B net income, but operating margins declined sharply from 16.9% to 9.2%, indicating potential debt servicing pressure.",
					"Risk Exposure: High geopolitical vulnerability with 25% of production in China; US market share fell from 65% to 50% amid competition, necessitating liquidity-focused loan covenants.",
					"Competitive Stability: Strong differentiators (50,000+ Supercharger stations, vertical integration) & $7,500 government incentives provide medium-term stability.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 0.79}, {Year: "FY'23", Value: 0.68}, {Year: "FY'24", Value: 0.73},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 71}, {Year: "FY'23", Value: 27}, {Year: "FY'24", Value: 51},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Debt Service Coverage Ratio", Value: "1.5x"},
					{Metric: "Min. Liquidity Reserve", Value: "$15B"},
					{Metric: "Max. Debt to EBIDTA Ratio", Value: "3.0x"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_TESLA", Status: "verified"},
					{Name: "Cashflow Statement_TESLA", Status: "verified"},
					{Name: "Consolidated Balance Sheet_TESLA", Status: "verified"},
				},
				ApplicationSummary: "Tesla is applying for a $100 M loan to fund facility expansion and new machinery, with collateral including machinery ($1.5M) and corporate guarantees, requesting a 7-year term at 5.5% fixed interest with a 6-month interest-only period.",
				InsightsSynthesis:  "Tesla faces transformative period with moderating growth and intense competition, particularly from BYD. Strong Energy segment and manufacturing innovations offset automotive margin pressure. Financial resilience despite market challenges suggests cautious optimism for loan visibility.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "While Tesla maintains substantial revenue, its profitability is under significant pressure. Consider both the current margin compression and Tesla's potential for margin recovery through manufacturing efficiencies (4680 batteries Gigacasting) and growth in higher margin business segments (Energy potential FSD revenue).",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 60, OperatingMargin: 14},
						{Year: "2023", Amount: 80, OperatingMargin: 10},
						{Year: "2024", Amount: 95, OperatingMargin: 9},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Insight into the competitive dynamics of the EV industry and applicant's position within it",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 4, Description: "High - More options for consumers as competition increases."},
						SupplierPower:      model.Force{Score: 3, Description: "Moderate - Some vertical integration, but dependent on raw materials."},
						ThreatNewEntrants:  model.Force{Score: 3, Description: "Moderate. Capital requirements high, but legacy automakers transitioning to EVs."},
						ThreatSubstitutes:  model.Force{Score: 3, Description: "Moderate - Hybrid vehicles and hydrogen technology as alternatives."},
						CompetitiveRivalry: model.Force{Score: 4, Description: "High - Intense competition from BYD, legacy automakers, and new entrants."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CL-3345",
			ApplicantName:     "Nvidia",
			Industry:          "Technology",
			LoanAmount:        170000000,
			LoanAmountDisplay: "$170 M",
			LegalEntityType:   "Public",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "verified",
			ApplicationStatus: "AI Approved",
			ReviewStatus:      model.ReviewStatusPending,
			IsOverdue:         true,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Approve Loan",
					Notes:  "Strong financials support approval with standard covenants",
				},
				CompanyInsights: []string{
					"Revenue growth: 126% YoY growth driven by data center GPU demand, with $60.9B annual revenue and $29.8B net income.",
					"Market dominance: >80% market share in AI training GPUs; strong moat from CUDA ecosystem and developer tools.",
					"Risk factors: Concentration in AI/ML segment; regulatory risks from export controls to China affecting ~20% revenue.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 0.41}, {Year: "FY'23", Value: 0.54}, {Year: "FY'24", Value: 0.29},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 43}, {Year: "FY'23", Value: 33}, {Year: "FY'24", Value: 132},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Debt Service Coverage Ratio", Value: "2.0x"},
					{Metric: "Min. Liquidity Reserve", Value: "$20B"},
					{Metric: "Max. Debt to EBIDTA Ratio", Value: "2.5x"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_NVIDIA", Status: "verified"},
					{Name: "Cashflow Statement_NVIDIA", Status: "verified"},
					{Name: "Consolidated Balance Sheet_NVIDIA", Status: "verified"},
				},
				ApplicationSummary: "Nvidia is applying for a $170 M loan to expand data center manufacturing capacity and R&D facilities, with collateral including intellectual property and corporate guarantees, requesting a 5-year term at 4.8% fixed interest.",
				InsightsSynthesis:  "Nvidia dominates the AI accelerator market with exceptional growth trajectory. High dependency on data center segment presents concentration risk, but technological moat and ecosystem lock-in provide strong medium-term stability.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Nvidia's financial performance is exceptionally strong with record revenue and margins. The primary risk lies in the cyclical nature of semiconductor demand and potential regulatory headwinds from export restrictions.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 27, OperatingMargin: 38},
						{Year: "2023", Amount: 27, OperatingMargin: 21},
						{Year: "2024", Amount: 61, OperatingMargin: 54},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Analysis of the semiconductor and AI infrastructure industry dynamics",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 2, Description: "Low - Limited alternatives for high-end AI training GPUs."},
						SupplierPower:      model.Force{Score: 3, Description: "Moderate - Dependent on TSMC for fabrication."},
						ThreatNewEntrants:  model.Force{Score: 2, Description: "Low - Extremely high barriers: R&D costs, ecosystem lock-in."},
						ThreatSubstitutes:  model.Force{Score: 2, Description: "Low - Custom ASICs emerging but CUDA ecosystem dominates."},
						CompetitiveRivalry: model.Force{Score: 3, Description: "Moderate - AMD and Intel compete but Nvidia holds commanding lead."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CI-3405",
			ApplicantName:     "Verizon",
			Industry:          "Telecom",
			LoanAmount:        50000000,
			LoanAmountDisplay: "$50 M",
			LegalEntityType:   "Public",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "verified",
			ApplicationStatus: "AI Rejected",
			ReviewStatus:      model.ReviewStatusPending,
			IsOverdue:         false,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Reject Loan",
					Notes:  "High debt burden and declining subscriber growth present elevated risk",
				},
				CompanyInsights: []string{
					"Debt concern: Total debt of $150B with D/E ratio of 1.69, significantly above industry median of 1.2.",
					"Revenue stagnation: Wireless service revenue grew only 3.2% YoY while facing aggressive pricing from T-Mobile.",
					"Positive: Strong infrastructure assets and steady cash flow generation from legacy business.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 1.72}, {Year: "FY'23", Value: 1.65}, {Year: "FY'24", Value: 1.69},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 8.2}, {Year: "FY'23", Value: 6.1}, {Year: "FY'24", Value: 5.8},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Debt Service Coverage Ratio", Value: "1.8x"},
					{Metric: "Max. Leverage Ratio", Value: "4.0x"},
					{Metric: "Min. EBITDA Margin", Value: "35%"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_VERIZON", Status: "verified"},
					{Name: "Cashflow Statement_VERIZON", Status: "verified"},
					{Name: "Consolidated Balance Sheet_VERIZON", Status: "verified"},
				},
				ApplicationSummary: "Verizon is applying for a $50 M loan for 5G network expansion, with collateral including network infrastructure and spectrum licenses, requesting a 10-year term at 6.2% fixed interest.",
				InsightsSynthesis:  "Verizon faces headwinds from high debt load and competitive pricing pressure in wireless. Strong infrastructure base provides stability but growth outlook is limited.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Verizon's revenue remains stable but growth is muted. The high debt burden from spectrum acquisitions constrains financial flexibility and increases risk profile for new lending.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 136, OperatingMargin: 24},
						{Year: "2023", Amount: 134, OperatingMargin: 22},
						{Year: "2024", Amount: 135, OperatingMargin: 23},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Telecom industry dynamics and competitive positioning analysis",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 4, Description: "High - Low switching costs, commoditized services."},
						SupplierPower:      model.Force{Score: 2, Description: "Low - Multiple equipment vendors available."},
						ThreatNewEntrants:  model.Force{Score: 1, Description: "Very Low - Massive capital requirements and spectrum licensing."},
						ThreatSubstitutes:  model.Force{Score: 3, Description: "Moderate - Satellite internet and Wi-Fi alternatives emerging."},
						CompetitiveRivalry: model.Force{Score: 5, Description: "Very High - Intense competition from T-Mobile, AT&T."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CL-3466",
			ApplicantName:     "Pepsi",
			Industry:          "Consumer",
			LoanAmount:        96000000,
			LoanAmountDisplay: "$96 M",
			LegalEntityType:   "Public",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "warning",
			ApplicationStatus: "On Hold by AI",
			ReviewStatus:      model.ReviewStatusAwaiting,
			IsOverdue:         false,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Hold",
					Notes:  "Missing quarterly financial statements; awaiting updated cash flow projections",
				},
				CompanyInsights: []string{
					"Stable business: Diversified portfolio across beverages and snacks with consistent 5-7% organic revenue growth.",
					"Document gap: Q3 2024 financial statements not yet submitted; cash flow projections need updating.",
					"Strong brand portfolio: Frito-Lay and Quaker segments provide resilient cash flows.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 2.28}, {Year: "FY'23", Value: 2.35}, {Year: "FY'24", Value: 2.19},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 11.4}, {Year: "FY'23", Value: 10.2}, {Year: "FY'24", Value: 9.8},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Interest Coverage Ratio", Value: "8.0x"},
					{Metric: "Max. Net Debt/EBITDA", Value: "3.5x"},
					{Metric: "Min. Current Ratio", Value: "0.9x"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_PEPSI", Status: "verified"},
					{Name: "Cashflow Statement_PEPSI", Status: "warning"},
					{Name: "Balance Sheet_PEPSI", Status: "verified"},
				},
				ApplicationSummary: "PepsiCo is applying for a $96 M loan for supply chain modernization and distribution center expansion, requesting a 5-year term at 5.0% fixed interest with quarterly repayments.",
				InsightsSynthesis:  "PepsiCo has a robust and diversified portfolio, but document completeness issues are holding up the review. Once financial statements are updated, the application can proceed.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "PepsiCo maintains steady revenue growth and solid margins. The Frito-Lay segment continues to be the primary margin driver. Focus on document completion to proceed with underwriting.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 86, OperatingMargin: 13},
						{Year: "2023", Amount: 91, OperatingMargin: 14},
						{Year: "2024", Amount: 92, OperatingMargin: 13},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Consumer staples industry competitive dynamics",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 3, Description: "Moderate - Retailers have negotiating power but brand loyalty persists."},
						SupplierPower:      model.Force{Score: 2, Description: "Low - Diversified agricultural inputs, multiple sourcing options."},
						ThreatNewEntrants:  model.Force{Score: 2, Description: "Low - Significant brand investment and distribution networks required."},
						ThreatSubstitutes:  model.Force{Score: 3, Description: "Moderate - Health-conscious trends shifting demand patterns."},
						CompetitiveRivalry: model.Force{Score: 4, Description: "High - Intense competition with Coca-Cola and private labels."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CL-3411",
			ApplicantName:     "Walmart",
			Industry:          "Consumer",
			LoanAmount:        240000000,
			LoanAmountDisplay: "$240 M",
			LegalEntityType:   "Public",
			ApplicationStage:  "Closing",
			DocumentsStatus:   "verified",
			ApplicationStatus: "AI Approved",
			ReviewStatus:      model.ReviewStatusApproved,
			IsOverdue:         false,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Approve Loan",
					Notes:  "Strong cash flows and market position support approval",
				},
				CompanyInsights: []string{
					"Market leader: World's largest retailer with $648B revenue and consistent e-commerce growth (+23% YoY).",
					"Cash generation: $36B operating cash flow provides strong debt servicing capacity.",
					"Defensive positioning: Consumer staples focus provides recession resilience.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 0.73}, {Year: "FY'23", Value: 0.68}, {Year: "FY'24", Value: 0.62},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 9.8}, {Year: "FY'23", Value: 11.2}, {Year: "FY'24", Value: 12.5},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Debt Service Coverage Ratio", Value: "1.5x"},
					{Metric: "Max. Debt to EBIDTA Ratio", Value: "3.0x"},
					{Metric: "Min. Liquidity Reserve", Value: "$10B"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_WALMART", Status: "verified"},
					{Name: "Cashflow Statement_WALMART", Status: "verified"},
					{Name: "Consolidated Balance Sheet_WALMART", Status: "verified"},
				},
				ApplicationSummary: "Walmart is applying for a $240 M loan for distribution center automation and e-commerce fulfillment expansion, requesting a 7-year term at 4.5% fixed interest.",
				InsightsSynthesis:  "Walmart's dominant market position and strong cash flows make this a low-risk lending opportunity. E-commerce growth trajectory adds upside potential.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Walmart's financial profile is robust with consistent revenue growth and improving margins from automation investments. Strong free cash flow generation supports the requested loan amount.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 573, OperatingMargin: 4.5},
						{Year: "2023", Amount: 611, OperatingMargin: 4.2},
						{Year: "2024", Amount: 648, OperatingMargin: 4.6},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Retail industry competitive dynamics and market positioning",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 4, Description: "High - Price-sensitive consumers with many alternatives."},
						SupplierPower:      model.Force{Score: 1, Description: "Very Low - Walmart's scale gives enormous bargaining power."},
						ThreatNewEntrants:  model.Force{Score: 2, Description: "Low - Scale economics create significant barriers."},
						ThreatSubstitutes:  model.Force{Score: 3, Description: "Moderate - E-commerce platforms like Amazon compete directly."},
						CompetitiveRivalry: model.Force{Score: 4, Description: "High - Intense from Amazon, Costco, Target."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CL-3314",
			ApplicantName:     "Koch Industries",
			Industry:          "Manufacturing",
			LoanAmount:        85000000,
			LoanAmountDisplay: "$85 M",
			LegalEntityType:   "Private",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "missing",
			ApplicationStatus: "On Hold by AI",
			ReviewStatus:      model.ReviewStatusPending,
			IsOverdue:         false,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Hold",
					Notes:  "Critical financial documents missing; unable to complete risk assessment",
				},
				CompanyInsights: []string{
					"Private entity: Limited public financial data available; dependent on submitted documentation.",
					"Diversified conglomerate: Operations spanning refining, chemicals, paper, and technology.",
					"Document deficit: Annual audited financials and tax returns not yet received.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 0.45}, {Year: "FY'23", Value: 0.52}, {Year: "FY'24", Value: 0.48},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 15}, {Year: "FY'23", Value: 12}, {Year: "FY'24", Value: 14},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Debt Service Coverage Ratio", Value: "1.8x"},
					{Metric: "Max. Leverage Ratio", Value: "2.5x"},
					{Metric: "Annual Audit Requirement", Value: "Required"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_KOCH", Status: "missing"},
					{Name: "Cashflow Statement_KOCH", Status: "missing"},
					{Name: "Balance Sheet_KOCH", Status: "verified"},
				},
				ApplicationSummary: "Koch Industries is applying for an $85 M loan for manufacturing facility upgrades and process automation, requesting a 6-year term at 5.8% fixed interest.",
				InsightsSynthesis:  "Koch Industries is a well-diversified conglomerate, but the lack of key financial documents prevents completion of the AI risk assessment.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Limited financial visibility due to private entity status. Available data suggests solid cash generation but full assessment pending document submission.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 115, OperatingMargin: 8},
						{Year: "2023", Amount: 125, OperatingMargin: 9},
						{Year: "2024", Amount: 120, OperatingMargin: 8},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Diversified manufacturing and industrial conglomerate market analysis",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 3, Description: "Moderate - Diversified customer base across industries."},
						SupplierPower:      model.Force{Score: 3, Description: "Moderate - Commodity input dependency with hedging capabilities."},
						ThreatNewEntrants:  model.Force{Score: 2, Description: "Low - Capital-intensive operations with regulatory requirements."},
						ThreatSubstitutes:  model.Force{Score: 2, Description: "Low - Essential industrial products with limited alternatives."},
						CompetitiveRivalry: model.Force{Score: 3, Description: "Moderate - Fragmented markets with regional competition."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CL-3673",
			ApplicantName:     "The Home Depot",
			Industry:          "Retail",
			LoanAmount:        145000000,
			LoanAmountDisplay: "$145 M",
			LegalEntityType:   "Private",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "warning",
			ApplicationStatus: "On Hold by AI",
			ReviewStatus:      model.ReviewStatusAwaiting,
			IsOverdue:         true,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Hold",
					Notes:  "Cashflow projections inconsistent with historical trends; requires analyst review",
				},
				CompanyInsights: []string{
					"Market position: Leading home improvement retailer with $157B revenue and 2,300+ stores.",
					"Concern: Submitted cash flow projections show unusual patterns inconsistent with 3-year historical data.",
					"Strength: Strong same-store sales growth and professional segment expansion.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 11.2}, {Year: "FY'23", Value: 9.8}, {Year: "FY'24", Value: 8.5},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 14}, {Year: "FY'23", Value: 13}, {Year: "FY'24", Value: 15},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Interest Coverage Ratio", Value: "10.0x"},
					{Metric: "Max. Net Debt/EBITDA", Value: "2.5x"},
					{Metric: "Min. EBITDA Margin", Value: "14%"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_HOME_DEPOT", Status: "verified"},
					{Name: "Cashflow Statement_HOME_DEPOT", Status: "warning"},
					{Name: "Balance Sheet_HOME_DEPOT", Status: "verified"},
				},
				ApplicationSummary: "The Home Depot is applying for a $145 M loan for store renovation program and supply chain technology investment, requesting an 8-year term at 5.2% fixed interest.",
				InsightsSynthesis:  "The Home Depot has a strong market position but submitted financial projections require analyst review due to inconsistencies.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Strong retail performance with consistent margins. Cash flow projection anomalies need resolution before proceeding with approval decision.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 157, OperatingMargin: 15},
						{Year: "2023", Amount: 153, OperatingMargin: 14},
						{Year: "2024", Amount: 155, OperatingMargin: 14},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Home improvement retail industry dynamics",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 3, Description: "Moderate - Consumers have choice but brand loyalty exists."},
						SupplierPower:      model.Force{Score: 2, Description: "Low - Large retailer scale provides negotiating leverage."},
						ThreatNewEntrants:  model.Force{Score: 2, Description: "Low - Significant capital and supply chain investment required."},
						ThreatSubstitutes:  model.Force{Score: 3, Description: "Moderate - Online marketplaces and local contractors compete."},
						CompetitiveRivalry: model.Force{Score: 3, Description: "Moderate - Primary competitor Lowe's, with growing online threats."},
					},
				},
			},
		},
		{
			ApplicationNo:     "CI-3324",
			ApplicantName:     "STO Building Group",
			Industry:          "Construction",
			LoanAmount:        12000000,
			LoanAmountDisplay: "$12 M",
			LegalEntityType:   "Private",
			ApplicationStage:  "Underwriting",
			DocumentsStatus:   "verified",
			ApplicationStatus: "AI Approved",
			ReviewStatus:      model.ReviewStatusRejected,
			IsOverdue:         false,
			Analysis: model.Analysis{
				AIRecommendation: model.Recommendation{
					Action: "Approve Loan",
					Notes:  "Meets lending criteria; recommend standard construction industry covenants",
				},
				CompanyInsights: []string{
					"Niche player: Mid-size construction firm with $2B revenue focused on commercial and institutional projects.",
					"Consistent performance: Steady 8% revenue growth over 3 years with improving margins.",
					"Risk: Cyclical industry exposure and project concentration risk.",
				},
				KeyRatios: model.KeyRatios{
					DebtToEquity: []model.RatioPoint{
						{Year: "FY'22", Value: 0.85}, {Year: "FY'23", Value: 0.78}, {Year: "FY'24", Value: 0.72},
					},
					InterestCoverage: []model.RatioPoint{
						{Year: "FY'22", Value: 6.5}, {Year: "FY'23", Value: 7.2}, {Year: "FY'24", Value: 8.1},
					},
				},
				CovenantRecommendations: []model.Covenant{
					{Metric: "Min. Current Ratio", Value: "1.3x"},
					{Metric: "Max. Debt to Equity", Value: "1.0x"},
					{Metric: "Project Bonding Requirement", Value: "Required"},
				},
				Documents: []model.DocumentCheck{
					{Name: "P&L_STO", Status: "verified"},
					{Name: "Cashflow Statement_STO", Status: "verified"},
					{Name: "Balance Sheet_STO", Status: "verified"},
				},
				ApplicationSummary: "STO Building Group is applying for a $12 M loan for equipment acquisition and working capital for new institutional construction projects, requesting a 3-year term at 6.5% fixed interest.",
				InsightsSynthesis:  "STO Building Group shows solid operational metrics and improving financials, but the application was rejected by the human reviewer despite AI approval.",
				FinancialAnalysis: model.FinancialAnalysis{
					Summary: "Solid mid-market construction company with improving fundamentals. Project backlog provides revenue visibility for the loan term.",
					Financials: []model.FinancialYear{
						{Year: "2022", Amount: 1.7, OperatingMargin: 5},
						{Year: "2023", Amount: 1.85, OperatingMargin: 6},
						{Year: "2024", Amount: 2.0, OperatingMargin: 6},
					},
				},
				MacroAnalysis: model.MacroAnalysis{
					Summary: "Commercial construction industry analysis",
					PortersForces: model.PortersForces{
						BuyerPower:         model.Force{Score: 4, Description: "High - Project-based bidding with price-sensitive clients."},
						SupplierPower:      model.Force{Score: 3, Description: "Moderate - Material costs volatile, labor market tight."},
						ThreatNewEntrants:  model.Force{Score: 3, Description: "Moderate - Lower barriers than other industries but bonding required."},
						ThreatSubstitutes:  model.Force{Score: 1, Description: "Very Low - Physical construction has limited substitutes."},
						CompetitiveRivalry: model.Force{Score: 4, Description: "High - Fragmented market with many regional competitors."},
					},
				},
			},
		},
	}

	for i := range apps {
		apps[i].ID = uuid.NewString()
		apps[i].CreatedAt = now
		apps[i].UpdatedAt = now
	}
	return apps
}
