package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	_ "time/tzdata"
)

const (
	defaultPort             = 8080
	defaultDBPath           = "data/portfolio.db"
	defaultThemeInterval    = time.Minute
	defaultSectionThreshold = 3
	defaultSMTPHost         = "smtp.gmail.com"
	defaultSMTPPort         = 587
	defaultContactEmail     = "rahulkrish28@gmail.com"
	prefsFileName           = "prefs.db"
)

// Config captures startup settings for the web server and terminal renderer.
type Config struct {
	Port             int
	DBPath           string
	PrefsPath        string
	ThemeInterval    time.Duration
	Location         *time.Location
	SectionThreshold int
	LogFile          string

	SMTP  SMTP
	Admin Admin
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string
}

// Configured reports whether credentials are present.
func (s SMTP) Configured() bool { return s.User != "" && s.Password != "" }

func (s SMTP) Addr() string { return fmt.Sprintf("%s:%d", s.Host, s.Port) }

type Admin struct {
	Username string
	Password string
	// Defaulted is set when either credential fell back to the development value.
	Defaulted bool
}

// LoadFromEnv loads runtime configuration from environment variables.
func LoadFromEnv() (Config, error) {
	port, err := readInt("PORT", defaultPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	dbPath, err := readPath("PORTFOLIO_DB_PATH", defaultDBPath)
	if err != nil {
		return Config{}, err
	}

	prefsPath, err := readPath("PORTFOLIO_PREFS_PATH", defaultPrefsPath())
	if err != nil {
		return Config{}, err
	}

	interval, err := readDuration("PORTFOLIO_THEME_INTERVAL", defaultThemeInterval)
	if err != nil {
		return Config{}, err
	}

	loc, err := readLocation("PORTFOLIO_TZ")
	if err != nil {
		return Config{}, err
	}

	threshold, err := readInt("PORTFOLIO_SECTION_THRESHOLD", defaultSectionThreshold, 0, 200)
	if err != nil {
		return Config{}, err
	}

	smtpPort, err := readInt("SMTP_PORT", defaultSMTPPort, 1, 65535)
	if err != nil {
		return Config{}, err
	}

	admin := Admin{
		Username: os.Getenv("ADMIN_USERNAME"),
		Password: os.Getenv("ADMIN_PASSWORD"),
	}
	if admin.Username == "" {
		admin.Username = "admin"
		admin.Defaulted = true
	}
	if admin.Password == "" {
		admin.Password = "admin123"
		admin.Defaulted = true
	}

	return Config{
		Port:             port,
		DBPath:           dbPath,
		PrefsPath:        prefsPath,
		ThemeInterval:    interval,
		Location:         loc,
		SectionThreshold: threshold,
		LogFile:          os.Getenv("PORTFOLIO_LOG_FILE"),
		SMTP: SMTP{
			Host:     envOr("SMTP_HOST", defaultSMTPHost),
			Port:     smtpPort,
			User:     os.Getenv("SMTP_USER"),
			Password: os.Getenv("SMTP_PASS"),
			To:       envOr("TO_EMAIL", defaultContactEmail),
		},
		Admin: admin,
	}, nil
}

func defaultPrefsPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// No HOME in some containers; keep prefs next to the analytics db.
		return filepath.Join("data", prefsFileName)
	}
	return filepath.Join(dir, "portfolio", prefsFileName)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func readPath(key, fallback string) (string, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	if raw == "" {
		return "", fmt.Errorf("%s must not be empty", key)
	}
	if raw == ":memory:" {
		return raw, nil
	}

	clean := filepath.Clean(raw)
	if clean == "." {
		return "", fmt.Errorf("%s must not resolve to current directory", key)
	}
	return clean, nil
}

func readInt(key string, fallback, min, max int) (int, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	if parsed < min || parsed > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}

	return parsed, nil
}

func readDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	if parsed <= 0 {
		return 0, fmt.Errorf("%s must be greater than 0", key)
	}

	return parsed, nil
}

func readLocation(key string) (*time.Location, error) {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return time.Local, nil
	}

	loc, err := time.LoadLocation(raw)
	if err != nil {
		return nil, fmt.Errorf("%s must be an IANA time zone: %w", key, err)
	}
	return loc, nil
}
