package utils

import (
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Gateway  GatewayConfig
	Email    EmailConfig
	Session  SessionConfig
	Reviews  ReviewsConfig
}

type AppConfig struct {
	Name    string
	Port    string
	Debug   bool
	LogPath string
	SiteURL string // public website base URL for payment result redirects
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	MaxConns int32
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CacheTTL int // catalog cache TTL in seconds
}

type GatewayConfig struct {
	BaseURL        string
	ConsumerKey    string
	ConsumerSecret string
	CallbackURL    string
	IPNID          string
	Currency       string
}

type EmailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
	Operator string // operator inbox for inquiry notifications
}

type SessionConfig struct {
	CookieName  string
	ExpiryHours int
	Secure      bool
}

type ReviewsConfig struct {
	FeedURL string
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("SITE_URL", "http://localhost:3000")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("CACHE_TTL_SECONDS", 300)
	viper.SetDefault("GATEWAY_CURRENCY", "USD")
	viper.SetDefault("SESSION_COOKIE_NAME", "admin_session")
	viper.SetDefault("SESSION_EXPIRY_HOURS", 24)
	viper.SetDefault("SESSION_SECURE", false)

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	viper.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    viper.GetString("APP_NAME"),
			Port:    viper.GetString("PORT"),
			Debug:   viper.GetBool("DEBUG"),
			LogPath: viper.GetString("LOG_PATH"),
			SiteURL: viper.GetString("SITE_URL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			Addr:     viper.GetString("REDIS_ADDR"),
			Password: viper.GetString("REDIS_PASS"),
			DB:       viper.GetInt("REDIS_DB"),
			CacheTTL: viper.GetInt("CACHE_TTL_SECONDS"),
		},
		Gateway: GatewayConfig{
			BaseURL:        viper.GetString("GATEWAY_BASE_URL"),
			ConsumerKey:    viper.GetString("GATEWAY_CONSUMER_KEY"),
			ConsumerSecret: viper.GetString("GATEWAY_CONSUMER_SECRET"),
			CallbackURL:    viper.GetString("GATEWAY_CALLBACK_URL"),
			IPNID:          viper.GetString("GATEWAY_IPN_ID"),
			Currency:       viper.GetString("GATEWAY_CURRENCY"),
		},
		Email: EmailConfig{
			Host:     viper.GetString("SMTP_HOST"),
			Port:     viper.GetInt("SMTP_PORT"),
			User:     viper.GetString("SMTP_USER"),
			Password: viper.GetString("SMTP_PASS"),
			From:     viper.GetString("EMAIL_FROM"),
			Operator: viper.GetString("EMAIL_OPERATOR"),
		},
		Session: SessionConfig{
			CookieName:  viper.GetString("SESSION_COOKIE_NAME"),
			ExpiryHours: viper.GetInt("SESSION_EXPIRY_HOURS"),
			Secure:      viper.GetBool("SESSION_SECURE"),
		},
		Reviews: ReviewsConfig{
			FeedURL: viper.GetString("REVIEWS_FEED_URL"),
		},
	}

	return config, nil
}
