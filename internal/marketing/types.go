package marketing

import "time"

// Campaign is an ad campaign on one platform.
type Campaign struct {
	ID          int64
	Platform    string
	ExternalID  string
	Name        string
	Objective   string
	Status      string
	BudgetDaily float64
	StartDate   string
	EndDate     string
	Targeting   map[string]any
	CreatedAt   time.Time
}

// Metric is one day of ad performance.
type Metric struct {
	ID          int64
	CampaignID  *int64
	Date        string
	Impressions int64
	Clicks      int64
	Spend       float64
	Conversions int64
	Revenue     float64
	Metrics     map[string]any
	CreatedAt   time.Time
}

// --- UseCase Inputs ---

type CreateCampaignInput struct {
	Platform    string
	ExternalID  string
	Name        string
	Objective   string
	Status      string
	BudgetDaily float64
	StartDate   string
	EndDate     string
	Targeting   map[string]any
}

type ListCampaignsInput struct {
	Platform string
}

type CreateMetricInput struct {
	CampaignID  *int64
	Date        string
	Impressions int64
	Clicks      int64
	Spend       float64
	Conversions int64
	Revenue     float64
	Metrics     map[string]any
}

type ListMetricsInput struct {
	CampaignID *int64
}

// --- UseCase Outputs ---

type CreateCampaignOutput struct {
	Campaign Campaign
}

type ListCampaignsOutput struct {
	Campaigns []Campaign
}

type CreateMetricOutput struct {
	Metric Metric
}

type ListMetricsOutput struct {
	Metrics []Metric
}
