package log

// ZapConfig configures the zap-backed Logger.
type ZapConfig struct {
	Level        string // debug, info, warn, error
	Mode         string // debug, production
	Encoding     string // console, json
	ColorEnabled bool
}

type ctxKey string

const requestIDKey ctxKey = "request_id"
