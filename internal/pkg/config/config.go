package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/yashpatel/fileportal/internal/pkg/models"
)

// InitConfig loads configuration from the environment, bootstrapping from a
// .env file when running locally.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "fileportal")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// JWT config (optional signed-session mode)
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 60)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "fileportal")

	// Backend config
	configs.Backend.BaseURL = GetEnv("BACKEND_BASE_URL", "")
	configs.Backend.Bearer = GetEnv("BACKEND_BEARER", "")
	configs.Backend.APIKey = GetEnv("BACKEND_API_KEY", "")
	configs.Backend.RouteProbing = GetEnvAsBool("BACKEND_ROUTE_PROBING", true)

	configs.Backend.Paths.SendCode = GetEnv("BACKEND_PATH_SEND_CODE", "/auth/otp/send")
	configs.Backend.Paths.VerifyCode = GetEnv("BACKEND_PATH_VERIFY_CODE", "/auth/otp/verify")
	configs.Backend.Paths.PasswordLogin = GetEnv("BACKEND_PATH_PASSWORD_LOGIN", "/auth/login")
	configs.Backend.Paths.AcceptTerms = GetEnv("BACKEND_PATH_ACCEPT_TERMS", "/auth/accept-terms")
	configs.Backend.Paths.ListFiles = GetEnv("BACKEND_PATH_LIST_FILES", "/files")
	configs.Backend.Paths.Users = GetEnv("BACKEND_PATH_USERS", "/users")
	configs.Backend.Paths.UsersList = GetEnv("BACKEND_PATH_USERS_LIST", "")
	configs.Backend.Paths.UsersCreate = GetEnv("BACKEND_PATH_USERS_CREATE", "")
	configs.Backend.Paths.UsersUpdate = GetEnv("BACKEND_PATH_USERS_UPDATE", "")
	configs.Backend.Paths.UsersDelete = GetEnv("BACKEND_PATH_USERS_DELETE", "")
	configs.Backend.Paths.Accounts = GetEnv("BACKEND_PATH_ACCOUNTS", "")
	configs.Backend.Paths.NotifyTemp = GetEnv("BACKEND_PATH_NOTIFY_TEMP", "")
	configs.Backend.Paths.SuperAdmin = GetEnv("BACKEND_PATH_SUPERADMIN", "/users-public/is-superadmin")

	configs.Backend.Methods.UsersCreate = strings.ToUpper(GetEnv("BACKEND_METHOD_USERS_CREATE", "POST"))
	configs.Backend.Methods.UsersUpdate = strings.ToUpper(GetEnv("BACKEND_METHOD_USERS_UPDATE", "PUT"))
	configs.Backend.Methods.UsersDelete = strings.ToUpper(GetEnv("BACKEND_METHOD_USERS_DELETE", "DELETE"))

	configs.Backend.UserKeys.Name = GetEnv("BACKEND_USER_NAME_KEY", "name")
	configs.Backend.UserKeys.Email = GetEnv("BACKEND_USER_EMAIL_KEY", "email")
	configs.Backend.UserKeys.Mobile = GetEnv("BACKEND_USER_MOBILE_KEY", "mobile")
	configs.Backend.UserKeys.TempPassword = GetEnv("BACKEND_USER_TEMP_PASSWORD_KEY", "tempPassword")

	// Auth config
	configs.Auth.EmailDomain = strings.ToLower(GetEnv("EMAIL_DOMAIN", ""))
	configs.Auth.DomainRewrite = GetEnvAsBool("EMAIL_DOMAIN_REWRITE", false)
	configs.Auth.SuperAdmins = GetEnvAsSlice("SUPERADMIN_EMAILS")
	configs.Auth.ExpectedOTP = GetEnv("EXPECTED_OTP", "")

	// OTP config
	configs.OTP.LocalMode = GetEnvAsBool("LOCAL_OTP_MODE", false)
	configs.OTP.Digits = GetEnvAsInt("OTP_DIGITS", 5)
	configs.OTP.TTLMinutes = GetEnvAsInt("OTP_TTL_MINUTES", 10)
	configs.OTP.ShowDevOTP = GetEnvAsBool("SHOW_DEV_OTP", false)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", configs.App.Name)
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	// Accept the legacy "1"/"0" toggles alongside ParseBool spellings.
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice splits a comma-separated variable into trimmed, lower-cased
// entries. Empty entries are dropped.
func GetEnvAsSlice(key string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return nil
	}

	parts := strings.Split(valueStr, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			values = append(values, p)
		}
	}
	return values
}
