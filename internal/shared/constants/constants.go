package constants

const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// gin context keys set by the admin auth middleware
	ContextKeyAdminID       = "admin_id"
	ContextKeyAdminUsername = "admin_username"
	ContextKeyAdminRole     = "admin_role"

	// admin site roles
	RoleAdmin      = "admin"
	RoleInstructor = "instructor"

	// casbin actions
	ActionRead  = "read"
	ActionWrite = "write"

	// admin resources
	ResourcePilots        = "pilots"
	ResourceAirstrips     = "airstrips"
	ResourceAircraftTypes = "aircraft-types"
	ResourceCheckouts     = "checkouts"

	ErrMsgInternalServerError = "Internal server error occurred"
)
