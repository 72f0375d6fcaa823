package accounting

const (
	DefaultCurrency = "USD"
	ListLimit       = 200
)
