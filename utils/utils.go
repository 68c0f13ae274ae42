package utils

import (
	"ceam-backend/models"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-super-secret-jwt-key-change-this-in-production"

// GetConfig read the configuration from environment variables or config files
func GetConfig() (*models.Config, error) {
	config, err := Load()
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	return config, nil
}

// Load initializes and returns the application configuration using Viper.
// A .env file in the working directory is loaded into the environment first.
func Load() (*models.Config, error) {
	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded environment from .env")
	}

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../")

	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Config file not found (%v), using defaults and environment variables\n", err)
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	// Handle nested JSON structure from config.json
	if v.IsSet("app") || v.IsSet("mail") {
		flattenNestedConfig(v)
	}

	var config models.Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Application defaults
	v.SetDefault("app_name", "CEAM Website API")
	v.SetDefault("app_version", "1.0.0")
	v.SetDefault("app_env", "development")
	v.SetDefault("app_host", "0.0.0.0")
	v.SetDefault("app_port", "8081")

	v.SetDefault("jwt_secret", defaultJWTSecret)

	// Mail defaults
	v.SetDefault("mail_transport", "smtp")
	v.SetDefault("email_service", "gmail")
	v.SetDefault("email_user", "")
	v.SetDefault("email_password", "")
	v.SetDefault("admin_email", "contact@ceamalaysia.org")
	v.SetDefault("smtp_host", "")
	v.SetDefault("smtp_port", 0)
	v.SetDefault("display_timezone", "Asia/Kuala_Lumpur")

	// AWS defaults
	v.SetDefault("aws_region", "ap-southeast-1")
	v.SetDefault("aws_access_key_id", "")
	v.SetDefault("aws_secret_access_key", "")
	v.SetDefault("dynamodb_endpoint", "")
	v.SetDefault("dynamodb_table_prefix", "dev")
	v.SetDefault("ses_endpoint", "")
	v.SetDefault("delivery_log_enabled", false)

	// Catalog defaults, empty paths use the embedded content
	v.SetDefault("events_file", "")
	v.SetDefault("news_file", "")
	v.SetDefault("catalog_reload_schedule", "@every 5m")

	// Logging defaults
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")

	v.SetDefault("cors_origins", []string{"*"})

	v.SetDefault("basePath", "/api")

	v.SetDefault("tables", []string{"deliveries"})
}

// validate checks if all required configuration is provided
func validate(c *models.Config) error {
	if c.JWTSecret == defaultJWTSecret && c.AppEnv == "production" {
		return fmt.Errorf("JWT_SECRET must be set in production environment")
	}

	switch c.MailTransport {
	case "smtp":
		if c.EmailUser == "" || c.EmailPassword == "" {
			fmt.Println("No EMAIL_USER/EMAIL_PASSWORD provided, mail will only be logged")
			c.MailTransport = "log"
		}
	case "ses":
		if c.EmailUser == "" {
			return fmt.Errorf("EMAIL_USER must be set as the sender address for the ses transport")
		}
	case "log":
	default:
		return fmt.Errorf("unknown mail_transport %q (want smtp, ses or log)", c.MailTransport)
	}

	if _, err := time.LoadLocation(c.DisplayTimezone); err != nil {
		return fmt.Errorf("invalid display_timezone %q: %w", c.DisplayTimezone, err)
	}

	return nil
}

// envSet reports whether the environment variable for a flat key is present.
// An explicit environment variable wins over the value in config.json.
func envSet(key string) bool {
	_, ok := os.LookupEnv(strings.ToUpper(key))
	return ok
}

// flattenNestedConfig flattens the nested JSON structure to flat keys for easier mapping
func flattenNestedConfig(v *viper.Viper) {
	nested := map[string]string{
		"app.name":                  "app_name",
		"app.version":               "app_version",
		"app.env":                   "app_env",
		"app.host":                  "app_host",
		"app.port":                  "app_port",
		"jwt.secret":                "jwt_secret",
		"mail.transport":            "mail_transport",
		"mail.service":              "email_service",
		"mail.user":                 "email_user",
		"mail.password":             "email_password",
		"mail.admin":                "admin_email",
		"mail.smtp_host":            "smtp_host",
		"mail.smtp_port":            "smtp_port",
		"mail.timezone":             "display_timezone",
		"aws.region":                "aws_region",
		"aws.access_key_id":         "aws_access_key_id",
		"aws.secret_access_key":     "aws_secret_access_key",
		"aws.dynamodb_endpoint":     "dynamodb_endpoint",
		"aws.dynamodb_table_prefix": "dynamodb_table_prefix",
		"aws.ses_endpoint":          "ses_endpoint",
		"aws.delivery_log_enabled":  "delivery_log_enabled",
		"catalog.events_file":       "events_file",
		"catalog.news_file":         "news_file",
		"catalog.reload_schedule":   "catalog_reload_schedule",
		"logging.level":             "log_level",
		"logging.format":            "log_format",
	}
	for from, to := range nested {
		if envSet(to) {
			continue
		}
		if v.IsSet(from) {
			v.Set(to, v.Get(from))
		}
	}

	if v.IsSet("cors.origins") && !envSet("cors_origins") {
		v.Set("cors_origins", v.GetStringSlice("cors.origins"))
	}
}

// PrintPrettyJSON takes any struct or map and prints it as pretty JSON
func PrintPrettyJSON(data interface{}) string {
	prettyJSON, err := json.MarshalIndent(data, "", "    ")
	if err != nil {
		fmt.Println("Failed to generate JSON:", err)
		return ""
	}
	return string(prettyJSON)
}

// GenerateUUID returns a new UUID string
func GenerateUUID() string {
	return uuid.New().String()
}

// ClientIdentifier returns the forwarded-for header value, or "unknown" when it is absent
func ClientIdentifier(forwardedFor string) string {
	if strings.TrimSpace(forwardedFor) == "" {
		return "unknown"
	}
	return forwardedFor
}
