package constants

// Redis key formats
const (
	KeyPortalOTP = "portal:otp:%s" // Format: portal:otp:{login}
)
