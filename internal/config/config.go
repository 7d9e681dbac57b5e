package config

import (
	"flag"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/moviematch/core/internal/logging"
)

type HTTPServer struct {
	Host         string
	Port         string
	Mode         string // "RO" rejects writes
	GinMode      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
	PoolSize int
	Migrate  bool
}

type RedisCache struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	PoolTTL  time.Duration
}

type Feed struct {
	Limit        int
	MinVoteCount int
	Oversample   int
}

type Participants struct {
	Self    int64
	Partner int64
}

type TMDB struct {
	APIKey   string
	BaseURL  string
	Language string
	Region   string
	Pages    int
	RPS      float64
}

type Log struct {
	Level  string
	Format string
}

type Config struct {
	HTTP         HTTPServer
	Postgres     Postgres
	Redis        RedisCache
	Feed         Feed
	Participants Participants
	TMDB         TMDB
	Log          Log
}

const logtag = "[config]"

// Load reads the optional -config flag and resolves the configuration from
// that env file (or .env) and the process environment.
func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	return LoadFrom(*configPath)
}

func LoadFrom(path string) *Config {
	log := logging.Logger()

	if path != "" {
		if err := godotenv.Load(path); err != nil {
			log.Fatal().Err(err).Msgf("%s err loading env from file", logtag)
		}
		log.Info().Str("path", path).Msgf("%s using env from file", logtag)
	} else {
		log.Info().Msgf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	cfg := &Config{
		HTTP:         *newHTTP(),
		Postgres:     *newPostgres(),
		Redis:        *newRedis(),
		Feed:         *newFeed(),
		Participants: *newParticipants(),
		TMDB:         *newTMDB(),
		Log:          *newLog(),
	}

	return cfg
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Host:         getenv("HTTP_HOST", ""),
		Port:         getenv("HTTP_PORT", "3000"),
		Mode:         getenv("HTTP_MODE", "RW"),
		GinMode:      getenv("GIN_MODE", "release"),
		ReadTimeout:  getenvDuration("HTTP_READ_TIMEOUT", 10*time.Second),
		WriteTimeout: getenvDuration("HTTP_WRITE_TIMEOUT", 10*time.Second),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "postgres"),
		Password: getsecret("DB_PASSWORD", "postgres"),
		DBName:   getenv("DB_NAME", "moviematch"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
		PoolSize: getenvInt("DB_POOL_SIZE", 10),
		Migrate:  getenvBool("DB_MIGRATE", true),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Enabled:  getenvBool("REDIS_ENABLED", false),
		Host:     getenv("REDIS_HOST", "localhost"),
		Port:     getenv("REDIS_PORT", "6379"),
		Password: getsecret("REDIS_PASSWORD", ""),
		PoolTTL:  getenvDuration("REDIS_POOL_TTL", 10*time.Minute),
	}
}

func newFeed() *Feed {
	return &Feed{
		Limit:        getenvInt("FEED_LIMIT", 20),
		MinVoteCount: getenvInt("FEED_MIN_VOTE_COUNT", 10),
		Oversample:   getenvInt("FEED_OVERSAMPLE", 3),
	}
}

func newParticipants() *Participants {
	return &Participants{
		Self:    int64(getenvInt("PARTICIPANT_SELF_ID", 1)),
		Partner: int64(getenvInt("PARTICIPANT_PARTNER_ID", 2)),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:   getsecret("TMDB_API_KEY", ""),
		BaseURL:  getenv("TMDB_BASE_URL", "https://api.themoviedb.org/3"),
		Language: getenv("TMDB_LANGUAGE", "tr-TR"),
		Region:   getenv("TMDB_REGION", "TR"),
		Pages:    getenvInt("TMDB_PAGES", 5),
		RPS:      getenvFloat("TMDB_RPS", 5),
	}
}

func newLog() *Log {
	return &Log{
		Level:  getenv("LOG_LEVEL", "info"),
		Format: getenv("LOG_FORMAT", "json"),
	}
}

func getenv(key, defaultValue string) string {
	log := logging.Logger()
	val := os.Getenv(key)
	if val == "" {
		log.Debug().Str("key", key).Str("default", defaultValue).Msgf("%s undefined, using default", logtag)
		return defaultValue
	}
	log.Debug().Str("key", key).Str("value", val).Msgf("%s resolved", logtag)
	return val
}

// getsecret behaves like getenv but never logs the value.
func getsecret(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultValue
}

func getenvInt(key string, defaultValue int) int {
	raw := getenv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		logging.Logger().Warn().Str("key", key).Str("value", raw).Msgf("%s not an integer, using default", logtag)
		return defaultValue
	}
	return v
}

func getenvFloat(key string, defaultValue float64) float64 {
	raw := getenv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		logging.Logger().Warn().Str("key", key).Str("value", raw).Msgf("%s not a number, using default", logtag)
		return defaultValue
	}
	return v
}

func getenvBool(key string, defaultValue bool) bool {
	raw := getenv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(strings.TrimSpace(raw))
	if err != nil {
		logging.Logger().Warn().Str("key", key).Str("value", raw).Msgf("%s not a boolean, using default", logtag)
		return defaultValue
	}
	return v
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := getenv(key, "")
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(strings.TrimSpace(raw))
	if err != nil {
		logging.Logger().Warn().Str("key", key).Str("value", raw).Msgf("%s not a duration, using default", logtag)
		return defaultValue
	}
	return v
}
