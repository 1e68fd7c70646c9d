package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server  ServerConfig
	Poster  PosterConfig
	Reports ReportsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
	RateLimitPerSec  int
	RateLimitBurst   int
}

// PosterConfig holds the vendor API connection settings. Token is required
// for every data endpoint; a missing token is a per-request configuration
// error, not a startup failure.
type PosterConfig struct {
	Token       string
	BaseURL     string
	AccountSlug string
	CallTimeout time.Duration
}

// MatchStrategy selects how category membership is decided during
// per-employee aggregation. The direct strategy trusts only the category id
// carried on the position; the union strategy additionally includes any
// position whose product belongs to a filtered category per the product
// reference cache.
type MatchStrategy string

const (
	MatchDirect MatchStrategy = "direct"
	MatchUnion  MatchStrategy = "union"
)

type ReportsConfig struct {
	BarCategories   []int64
	ProductCacheTTL time.Duration
	MatchStrategy   MatchStrategy
	Timezone        *time.Location
	ShotTable       ShotTable
}

func Load() *Config {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "3001"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			RateLimitPerSec: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:  getIntEnv("RATE_LIMIT_BURST", 20),
		},
		Poster: PosterConfig{
			Token:       os.Getenv("POSTER_TOKEN"),
			BaseURL:     loadPosterBaseURL(),
			AccountSlug: os.Getenv("POSTER_ACCOUNT"),
			CallTimeout: getDurationEnv("POSTER_CALL_TIMEOUT", 10*time.Second),
		},
		Reports: ReportsConfig{
			BarCategories:   getInt64ListEnv("BAR_CATEGORIES", []int64{9, 14, 34}),
			ProductCacheTTL: getDurationEnv("PRODUCT_CACHE_TTL", 15*time.Minute),
			MatchStrategy:   loadMatchStrategy(),
			Timezone:        loadTimezone(),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()
	config.Reports.ShotTable = LoadShotTable(os.Getenv("SHOTS_TABLE_PATH"))

	return config
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// getInt64ListEnv parses a comma-separated list of integer ids. Entries that
// fail to parse are skipped; an empty result falls back to the default.
func getInt64ListEnv(key string, defaultValue []int64) []int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var out []int64
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			log.Printf("WARNING: %s: skipping unparsable id %q", key, part)
			continue
		}
		out = append(out, id)
	}

	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// loadPosterBaseURL resolves the vendor API base. An explicit POSTER_BASE_URL
// wins; otherwise a configured account slug selects the per-account host.
func loadPosterBaseURL() string {
	if base := os.Getenv("POSTER_BASE_URL"); base != "" {
		return base
	}
	if slug := os.Getenv("POSTER_ACCOUNT"); slug != "" {
		return "https://" + slug + ".joinposter.com/api"
	}
	return "https://joinposter.com/api"
}

func loadMatchStrategy() MatchStrategy {
	switch strings.ToLower(os.Getenv("CATEGORY_MATCH_STRATEGY")) {
	case "direct":
		return MatchDirect
	case "union", "":
		return MatchUnion
	default:
		log.Printf("WARNING: CATEGORY_MATCH_STRATEGY has unknown value %q, using union", os.Getenv("CATEGORY_MATCH_STRATEGY"))
		return MatchUnion
	}
}

// loadTimezone resolves the reporting timezone used for "today" defaults.
// The venue operates in Europe/Kyiv.
func loadTimezone() *time.Location {
	name := getEnv("REPORT_TIMEZONE", "Europe/Kyiv")
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("WARNING: REPORT_TIMEZONE %q not found, using UTC", name)
		return time.UTC
	}
	return loc
}

func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ORIGIN")

	if corsOrigins == "" {
		log.Println("INFO: CORS_ORIGIN not set, defaulting to '*' (all origins)")
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	return origins
}
