package marketing

const (
	DefaultCampaignStatus = "draft"
	CampaignListLimit     = 200
	MetricListLimit       = 500
)
