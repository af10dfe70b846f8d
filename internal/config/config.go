package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Storage   StorageConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Shop      ShopConfig
	Printer   PrinterConfig
}

type AppConfig struct {
	Name string
	Env  string
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds the Postgres connection string
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type JWTConfig struct {
	Secret             string
	AccessTokenExpiry  time.Duration
	RefreshTokenExpiry time.Duration
}

type StorageConfig struct {
	Path          string
	UploadMaxSize int64
}

type CORSConfig struct {
	AllowedOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// ShopConfig holds the shop identity printed on receipts and reports
type ShopConfig struct {
	Name                  string
	Address               string
	Phone                 string
	GSTIN                 string
	ReceiptPrefix         string
	WhatsAppCountryCode   string
	TimezoneOffsetMinutes int
}

type PrinterConfig struct {
	Type    string
	USBPath string
	Address string
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	// .env is optional, environment variables take precedence
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !strings.Contains(err.Error(), "no such file") {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	setDefaults()

	cfg := &Config{
		App: AppConfig{
			Name: viper.GetString("APP_NAME"),
			Env:  viper.GetString("APP_ENV"),
			Port: viper.GetString("APP_PORT"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
		},
		JWT: JWTConfig{
			Secret:             viper.GetString("JWT_SECRET"),
			AccessTokenExpiry:  viper.GetDuration("JWT_ACCESS_EXPIRY"),
			RefreshTokenExpiry: viper.GetDuration("JWT_REFRESH_EXPIRY"),
		},
		Storage: StorageConfig{
			Path:          viper.GetString("STORAGE_PATH"),
			UploadMaxSize: viper.GetInt64("UPLOAD_MAX_SIZE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ","),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: viper.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             viper.GetInt("RATE_LIMIT_BURST"),
		},
		Shop: ShopConfig{
			Name:                  viper.GetString("SHOP_NAME"),
			Address:               viper.GetString("SHOP_ADDRESS"),
			Phone:                 viper.GetString("SHOP_PHONE"),
			GSTIN:                 viper.GetString("SHOP_GSTIN"),
			ReceiptPrefix:         viper.GetString("RECEIPT_PREFIX"),
			WhatsAppCountryCode:   viper.GetString("WHATSAPP_COUNTRY_CODE"),
			TimezoneOffsetMinutes: viper.GetInt("TIMEZONE_OFFSET_MINUTES"),
		},
		Printer: PrinterConfig{
			Type:    viper.GetString("PRINTER_TYPE"),
			USBPath: viper.GetString("PRINTER_USB_PATH"),
			Address: viper.GetString("PRINTER_ADDRESS"),
		},
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("APP_NAME", "cycleshop-api")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")

	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "cycleshop")
	viper.SetDefault("DB_SSLMODE", "disable")

	viper.SetDefault("JWT_ACCESS_EXPIRY", "15m")
	viper.SetDefault("JWT_REFRESH_EXPIRY", "168h")

	viper.SetDefault("STORAGE_PATH", "./uploads")
	viper.SetDefault("UPLOAD_MAX_SIZE", 5*1024*1024)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")

	viper.SetDefault("RATE_LIMIT_RPS", 10.0)
	viper.SetDefault("RATE_LIMIT_BURST", 20)

	viper.SetDefault("SHOP_NAME", "WAHEED Cycle Shop")
	viper.SetDefault("SHOP_ADDRESS", "Main Road, Near Bus Stand")
	viper.SetDefault("SHOP_PHONE", "+91 98765 43210")
	viper.SetDefault("SHOP_GSTIN", "")
	viper.SetDefault("RECEIPT_PREFIX", "WCS")
	viper.SetDefault("WHATSAPP_COUNTRY_CODE", "91")
	viper.SetDefault("TIMEZONE_OFFSET_MINUTES", 330)

	viper.SetDefault("PRINTER_TYPE", "none")
	viper.SetDefault("PRINTER_USB_PATH", "/dev/usb/lp0")
	viper.SetDefault("PRINTER_ADDRESS", "")
}
