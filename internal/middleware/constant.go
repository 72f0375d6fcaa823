package middleware

const (
	HeaderRequestID = "X-Request-ID"
	LogPrefixAccess = "internal.middleware.AccessLog"
)
