package domain

import "strings"

// DailyQuantity holds the planned send volume for one campaign day.
type DailyQuantity struct {
	// DayNumber is the campaign day (1-based).
	DayNumber int

	// Quantity is the number of messages sent on that day.
	Quantity int
}

// MarketingPlan holds the campaign parameters entered by the user.
// Only CampaignKeywords and ProductName feed the selection query;
// the remaining fields describe the campaign itself.
type MarketingPlan struct {
	// ProductName is the product being marketed.
	ProductName string

	// StartDate is the campaign start date (YYYY-MM-DD).
	StartDate string

	// TotalQuantity is the total send volume.
	TotalQuantity int

	// DailyQuantities is the per-day send schedule.
	DailyQuantities []DailyQuantity

	// TargetGender is the demographic gender filter.
	TargetGender string

	// TargetAgeMin is the minimum target age.
	TargetAgeMin int

	// TargetAgeMax is the maximum target age.
	TargetAgeMax int

	// CampaignKeywords is a comma-separated keyword string.
	CampaignKeywords string
}

// QueryTerms returns the terms that feed the similarity query:
// each comma-separated keyword plus the product name. Blank terms
// are dropped.
func (p MarketingPlan) QueryTerms() []string {
	terms := make([]string, 0, 8)
	for _, kw := range strings.Split(p.CampaignKeywords, ",") {
		if kw = strings.TrimSpace(kw); kw != "" {
			terms = append(terms, kw)
		}
	}
	if name := strings.TrimSpace(p.ProductName); name != "" {
		terms = append(terms, name)
	}
	return terms
}
