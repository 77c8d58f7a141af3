package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-VentureLens-Request-ID"
)
