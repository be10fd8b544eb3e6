package constants

// Redis key formats
const (
	KeyUserOTP        = "auth:otp:%s"             // Format: auth:otp:{phone}
	KeyRevokedRefresh = "auth:refresh:revoked:%s" // Format: auth:refresh:revoked:{jti}
)
