package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Backend  BackendConfig
	Auth     AuthConfig
	OTP      OTPConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// JWTConfig contains the optional signed-session configuration.
// When Secret is empty the portal falls back to the plain login_type cookie.
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// BackendConfig describes how to reach the external REST backend.
type BackendConfig struct {
	BaseURL      string
	Bearer       string
	APIKey       string
	RouteProbing bool
	Paths        BackendPaths
	Methods      BackendMethods
	UserKeys     UserFieldKeys
}

// BackendPaths holds per-operation path overrides. Each has a single
// best-guess default; the adapter only probes alternatives when route
// probing is enabled.
type BackendPaths struct {
	SendCode      string
	VerifyCode    string
	PasswordLogin string
	AcceptTerms   string
	ListFiles     string
	Users         string
	UsersList     string
	UsersCreate   string
	UsersUpdate   string
	UsersDelete   string
	Accounts      string
	NotifyTemp    string
	SuperAdmin    string
}

// BackendMethods holds per-operation HTTP verb overrides.
type BackendMethods struct {
	UsersCreate string
	UsersUpdate string
	UsersDelete string
}

// UserFieldKeys remaps user record field names on the wire when the backend
// expects different keys.
type UserFieldKeys struct {
	Name         string
	Email        string
	Mobile       string
	TempPassword string
}

// AuthConfig contains sign-in flow configuration
type AuthConfig struct {
	EmailDomain   string
	DomainRewrite bool
	SuperAdmins   []string
	ExpectedOTP   string
}

// OTPConfig contains one-time passcode configuration
type OTPConfig struct {
	LocalMode  bool
	Digits     int
	TTLMinutes int
	ShowDevOTP bool
}

// NewRelicConfig contains New Relic configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
