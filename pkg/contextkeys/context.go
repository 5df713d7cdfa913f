package contextkeys

// Keys the middleware stores on *gin.Context.
const (
	UserIDKey    = "userID"
	RoleKey      = "role"
	ClaimsKey    = "claims"
	RequestIDKey = "requestID"
)

// RequestIDHeader is echoed on every response.
const RequestIDHeader = "X-Request-ID"
