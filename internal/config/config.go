package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/facetrack/timekeeper-backend-go/internal/domain/policy"
	"github.com/facetrack/timekeeper-backend-go/internal/pkg/validator"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Work     WorkConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds verification settings for tokens minted by the external
// auth system.
type JWTConfig struct {
	Secret string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
	Timezone string
}

// WorkConfig is the raw work-rule configuration; WorkPolicy() turns it into
// the validated policy value the engine runs on.
type WorkConfig struct {
	ShiftStart       string // HH:MM
	ShiftEnd         string // HH:MM
	GraceMinutes     int
	BreakMinutes     int
	RegularHoursCap  int
	WeekendShiftDays int
	PenaltyTiers     string // "from:amount,from:amount,..."
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "timekeeper"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Timezone: getEnv("APP_TIMEZONE", "UTC"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	// Work rule configuration
	graceMinutes, err := strconv.Atoi(getEnv("WORK_GRACE_MINUTES", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_GRACE_MINUTES: %w", err)
	}
	breakMinutes, err := strconv.Atoi(getEnv("WORK_BREAK_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_BREAK_MINUTES: %w", err)
	}
	regularCap, err := strconv.Atoi(getEnv("WORK_REGULAR_HOURS_CAP", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_REGULAR_HOURS_CAP: %w", err)
	}
	weekendShift, err := strconv.Atoi(getEnv("WORK_WEEKEND_SHIFT_DAYS", "3"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORK_WEEKEND_SHIFT_DAYS: %w", err)
	}

	config.Work = WorkConfig{
		ShiftStart:       getEnv("WORK_SHIFT_START", "08:00"),
		ShiftEnd:         getEnv("WORK_SHIFT_END", "17:00"),
		GraceMinutes:     graceMinutes,
		BreakMinutes:     breakMinutes,
		RegularHoursCap:  regularCap,
		WeekendShiftDays: weekendShift,
		PenaltyTiers:     getEnv("WORK_PENALTY_TIERS", "0:0,15:50000,30:100000,60:200000"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration. Work-rule defects are setup errors
// and must surface here, before any record is derived.
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := c.WorkPolicy(); err != nil {
		return err
	}
	return nil
}

// WorkPolicy builds and validates the immutable policy the pipeline runs on.
func (c *Config) WorkPolicy() (policy.WorkPolicy, error) {
	start, ok := validator.IsValidClockTime(c.Work.ShiftStart)
	if !ok {
		return policy.WorkPolicy{}, fmt.Errorf("invalid WORK_SHIFT_START %q, expected HH:MM", c.Work.ShiftStart)
	}
	end, ok := validator.IsValidClockTime(c.Work.ShiftEnd)
	if !ok {
		return policy.WorkPolicy{}, fmt.Errorf("invalid WORK_SHIFT_END %q, expected HH:MM", c.Work.ShiftEnd)
	}

	table, err := parsePenaltyTiers(c.Work.PenaltyTiers)
	if err != nil {
		return policy.WorkPolicy{}, err
	}

	pol := policy.WorkPolicy{
		ShiftStartMinutes: start,
		ShiftEndMinutes:   end,
		GraceMinutes:      c.Work.GraceMinutes,
		BreakMinutes:      c.Work.BreakMinutes,
		RegularHoursCap:   c.Work.RegularHoursCap,
		WeekendShiftDays:  c.Work.WeekendShiftDays,
		PenaltyTable:      table,
	}
	if err := pol.Validate(); err != nil {
		return policy.WorkPolicy{}, fmt.Errorf("invalid work policy: %w", err)
	}
	return pol, nil
}

// parsePenaltyTiers parses "from:amount,from:amount,..." into a tier table.
func parsePenaltyTiers(raw string) (policy.PenaltyTable, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, fmt.Errorf("WORK_PENALTY_TIERS is required")
	}

	var table policy.PenaltyTable
	for _, part := range strings.Split(raw, ",") {
		kv := strings.Split(strings.TrimSpace(part), ":")
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid penalty tier %q, expected from:amount", part)
		}
		from, err := strconv.Atoi(kv[0])
		if err != nil {
			return nil, fmt.Errorf("invalid penalty tier bound %q: %w", kv[0], err)
		}
		amount, err := strconv.ParseInt(kv[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid penalty tier amount %q: %w", kv[1], err)
		}
		table = append(table, policy.PenaltyTier{FromMinutes: from, Amount: amount})
	}
	return table, nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
