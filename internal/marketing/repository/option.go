package repository

// ListCampaignsOptions filters campaigns. Results are ordered by ID descending.
type ListCampaignsOptions struct {
	Platform string
	Limit    int
}

// ListMetricsOptions filters metrics. Results are ordered by date, then ID, descending.
type ListMetricsOptions struct {
	CampaignID *int64
	Limit      int
}
