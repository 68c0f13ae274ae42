package models

// Config holds all configuration for the application
type Config struct {
	// Application
	AppName    string `mapstructure:"app_name"`
	AppVersion string `mapstructure:"app_version"`
	AppEnv     string `mapstructure:"app_env"`
	AppHost    string `mapstructure:"app_host"`
	AppPort    string `mapstructure:"app_port"`

	// Admin JWT
	JWTSecret string `mapstructure:"jwt_secret"`

	// Mail transport: "smtp", "ses" or "log"
	MailTransport string `mapstructure:"mail_transport"`
	EmailService  string `mapstructure:"email_service"`
	EmailUser     string `mapstructure:"email_user"`
	EmailPassword string `mapstructure:"email_password"`
	AdminEmail    string `mapstructure:"admin_email"`
	SMTPHost      string `mapstructure:"smtp_host"`
	SMTPPort      int    `mapstructure:"smtp_port"`

	// Display timezone for the admin notification timestamp
	DisplayTimezone string `mapstructure:"display_timezone"`

	// AWS
	AWSRegion           string `mapstructure:"aws_region"`
	AWSAccessKeyID      string `mapstructure:"aws_access_key_id"`
	AWSSecretAccessKey  string `mapstructure:"aws_secret_access_key"`
	DynamoDBEndpoint    string `mapstructure:"dynamodb_endpoint"`
	DynamoDBTablePrefix string `mapstructure:"dynamodb_table_prefix"`
	SESEndpoint         string `mapstructure:"ses_endpoint"`

	// Delivery ledger
	DeliveryLogEnabled bool `mapstructure:"delivery_log_enabled"`

	// Catalog
	EventsFile            string `mapstructure:"events_file"`
	NewsFile              string `mapstructure:"news_file"`
	CatalogReloadSchedule string `mapstructure:"catalog_reload_schedule"`

	// Logging
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`

	// CORS
	CORSOrigins []string `mapstructure:"cors_origins"`

	// Base Path
	BasePath string `mapstructure:"basePath"`

	Tables []string `mapstructure:"tables"`
}

// DeliveriesTable returns the prefixed DynamoDB table name for delivery records
func (c *Config) DeliveriesTable() string {
	return c.DynamoDBTablePrefix + "_deliveries"
}
