package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID     contextKey = "user_id"
	ContextKeyUserRole   contextKey = "user_role"
	ContextKeyCafeID     contextKey = "cafe_id"
	ContextKeyCredential contextKey = "credential"
)

const (
	RequestParamID       = "id"
	RequestParamCafeID   = "cafeId"
	RequestParamView     = "view"
	RequestParamSearch   = "search"
	RequestParamMobile   = "userMobile"
	RequestParamType     = "type"
	RequestParamRange    = "range"
	RequestParamImageURL = "image_url"
)

const (
	BookingViewRecent = "recent"
	BookingViewPast   = "past"
)

const (
	OtelServiceScopeName  = "service"
	OtelGatewayScopeName  = "gateway"
	OtelHandlerScopeName  = "handler"
	OtelExternalScopeName = "external"
	OtelS3ScopeName       = "s3"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
)

const (
	ContentTypeJSON              = "application/json"
	ContentTypeMultipartFormData = "multipart/form-data"
	FormFile                     = "file"
	RequestMaxMemory             = 10 << 20 // 10 MB
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Redirect destinations the console UI follows on auth/role denials.
const (
	RedirectLogin         = "/login"
	RedirectNotAuthorized = "/not-authorized"
	RedirectStaffLanding  = "/dashboard/cafe/redeem"
)

const (
	Asterix = "*"
	Empty   = ""
)
