package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const devJWTSecret = "your_default_secret_for_development_only"

type Config struct {
	Env         string
	Port        string
	FrontendURL string
	FrontendDir string
	CORSOrigins []string

	Database DatabaseConfig
	JWT      JWTConfig
	Mail     MailConfig
	Storage  StorageConfig
	Log      LogConfig
}

type DatabaseConfig struct {
	Driver       string // postgres | mysql
	URL          string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	AutoMigrate  bool
}

type JWTConfig struct {
	Secret     string
	TTLMinutes int
}

type MailConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type StorageConfig struct {
	Driver        string // local | cloudinary
	UploadDir     string
	CloudinaryURL string
}

type LogConfig struct {
	Level  string
	Format string
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

// Load membaca konfigurasi dari environment variable.
// Panggil godotenv.Load() sebelumnya jika ingin memakai file .env.
func Load() (*Config, error) {
	driver := strings.ToLower(GetEnv("DB_DRIVER", "postgres"))

	cfg := &Config{
		Env:         GetEnv("APP_ENV", "development"),
		Port:        GetEnv("PORT", "3001"),
		FrontendURL: strings.TrimRight(GetEnv("FRONTEND_URL", "http://localhost:5500"), "/"),
		FrontendDir: GetEnv("FRONTEND_DIR", ""),
		Database: DatabaseConfig{
			Driver:       driver,
			URL:          GetEnv("DATABASE_URL", ""),
			Host:         GetEnv("DB_HOST", "localhost"),
			Port:         GetEnvAsInt("DB_PORT", defaultDBPort(driver)),
			User:         GetEnv("DB_USER", "postgres"),
			Password:     GetEnv("DB_PASSWORD", ""),
			Name:         GetEnv("DB_DATABASE", "hotel_inspection"),
			SSLMode:      GetEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: GetEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns: GetEnvAsInt("DB_MAX_IDLE_CONNS", 5),
			AutoMigrate:  GetEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		JWT: JWTConfig{
			Secret:     GetEnv("JWT_SECRET", ""),
			TTLMinutes: GetEnvAsInt("JWT_TTL_MINUTES", 60),
		},
		Mail: MailConfig{
			Host:     GetEnv("EMAIL_HOST", ""),
			Port:     GetEnvAsInt("EMAIL_PORT", 587),
			User:     GetEnv("EMAIL_USER", ""),
			Password: GetEnv("EMAIL_PASS", ""),
			From:     GetEnv("EMAIL_FROM", ""),
		},
		Storage: StorageConfig{
			Driver:        strings.ToLower(GetEnv("STORAGE_DRIVER", "local")),
			UploadDir:     GetEnv("UPLOAD_DIR", "./uploads"),
			CloudinaryURL: GetEnv("CLOUDINARY_URL", ""),
		},
		Log: LogConfig{
			Level:  GetEnv("LOG_LEVEL", "info"),
			Format: GetEnv("LOG_FORMAT", ""),
		},
	}

	if cfg.JWT.Secret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET wajib diisi di environment production")
		}
		cfg.JWT.Secret = devJWTSecret
	}

	// tanpa SMTP, link reset password tidak bisa dikirim ke pengguna
	if cfg.IsProduction() && cfg.Mail.Host == "" {
		return nil, errors.New("EMAIL_HOST wajib diisi di environment production")
	}

	switch cfg.Database.Driver {
	case "postgres", "mysql":
	default:
		return nil, fmt.Errorf("DB_DRIVER tidak dikenal: %q", cfg.Database.Driver)
	}

	switch cfg.Storage.Driver {
	case "local":
	case "cloudinary":
		if cfg.Storage.CloudinaryURL == "" {
			return nil, errors.New("CLOUDINARY_URL wajib diisi jika STORAGE_DRIVER=cloudinary")
		}
	default:
		return nil, fmt.Errorf("STORAGE_DRIVER tidak dikenal: %q", cfg.Storage.Driver)
	}

	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
		if cfg.IsProduction() {
			cfg.Log.Format = "json"
		}
	}

	cfg.CORSOrigins = splitList(GetEnv("CORS_ORIGIN", ""))
	if !cfg.IsProduction() {
		cfg.CORSOrigins = append(cfg.CORSOrigins, "http://127.0.0.1:5500", "http://localhost:5500")
	}

	return cfg, nil
}

func defaultDBPort(driver string) int {
	if driver == "mysql" {
		return 3306
	}
	return 5432
}

// DSN menyusun connection string sesuai driver.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "mysql" {
		if d.URL != "" {
			return d.URL
		}
		// clientFoundRows agar RowsAffected menghitung baris yang cocok, bukan yang berubah
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&clientFoundRows=true",
			d.User, d.Password, d.Host, d.Port, d.Name)
	}

	if d.URL != "" {
		if d.SSLMode != "disable" && !strings.Contains(d.URL, "sslmode=") {
			sep := "?"
			if strings.Contains(d.URL, "?") {
				sep = "&"
			}
			return d.URL + sep + "sslmode=" + d.SSLMode
		}
		return d.URL
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

func GetEnvAsBool(key string, fallback bool) bool {
	valueStr := GetEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
