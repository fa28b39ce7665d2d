package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"career-guide/internal/logger"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	Log      logger.Config  `yaml:"log"`
	Chat     ChatConfig     `yaml:"chat"`
}

type AppConfig struct {
	AppName     string `yaml:"name"`
	Environment string `yaml:"env"`
	HTTPPort    string `yaml:"http_port"`
}

type DatabaseConfig struct {
	DBHost     string `yaml:"host"`
	DBPort     string `yaml:"port"`
	DBName     string `yaml:"name"`
	DBUser     string `yaml:"user"`
	DBPassword string `yaml:"password"`
	DBSSLMode  string `yaml:"ssl_mode"`

	ConnectTimeout        time.Duration `yaml:"connect_timeout"`
	PoolMaxConns          int32         `yaml:"pool_max_conns"`
	PoolMinConns          int32         `yaml:"pool_min_conns"`
	PoolMaxConnLifetime   time.Duration `yaml:"pool_max_conn_lifetime"`
	PoolMaxConnIdleTime   time.Duration `yaml:"pool_max_conn_idle_time"`
	PoolHealthCheckPeriod time.Duration `yaml:"pool_health_check_period"`
}

type RedisConfig struct {
	Host     string        `yaml:"host"`
	Port     string        `yaml:"port"`
	Password string        `yaml:"password"`
	DB       int           `yaml:"db"`
	TTL      time.Duration `yaml:"ttl"`
}

func (r RedisConfig) Addr() string {
	return r.Host + ":" + r.Port
}

// ChatConfig controls the websocket chat simulation.
type ChatConfig struct {
	ThinkingMin       time.Duration `yaml:"thinking_min"`
	ThinkingJitter    time.Duration `yaml:"thinking_jitter"`
	MessagesPerSecond float64       `yaml:"messages_per_second"`
	MessageBurst      int           `yaml:"message_burst"`
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

// Load reads an optional YAML file and overlays environment variables on top of it.
// A .env file in the working directory is loaded first when present.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Config{}
	if p := strings.TrimSpace(path); p != "" {
		data, err := os.ReadFile(p)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
	}

	var missing, invalid []string
	opt := func(key, cur string) string {
		if v := strings.TrimSpace(os.Getenv(key)); v != "" {
			return v
		}
		return strings.TrimSpace(cur)
	}
	req := func(key, cur string) string {
		v := opt(key, cur)
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	def := func(v, fallback string) string {
		if v == "" {
			return fallback
		}
		return v
	}
	dur := func(key string, cur time.Duration) time.Duration {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return cur
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return cur
		}
		return d
	}
	num := func(key string, cur int) int {
		raw := strings.TrimSpace(os.Getenv(key))
		if raw == "" {
			return cur
		}
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			invalid = append(invalid, key)
			return cur
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME", cfg.App.AppName),
		Environment: req("APP_ENV", cfg.App.Environment),
		HTTPPort:    req("HTTP_PORT", cfg.App.HTTPPort),
	}

	db := cfg.Database
	cfg.Database = DatabaseConfig{
		DBHost:     def(opt("DB_HOST", db.DBHost), "localhost"),
		DBPort:     def(opt("DB_PORT", db.DBPort), "5432"),
		DBName:     opt("DB_NAME", db.DBName),
		DBUser:     opt("DB_USER", db.DBUser),
		DBPassword: opt("DB_PASSWORD", db.DBPassword),
		DBSSLMode:  def(opt("DB_SSL_MODE", db.DBSSLMode), "disable"),

		ConnectTimeout:        dur("DB_CONNECT_TIMEOUT", db.ConnectTimeout),
		PoolMaxConns:          int32(num("DB_POOL_MAX_CONNS", int(db.PoolMaxConns))),
		PoolMinConns:          int32(num("DB_POOL_MIN_CONNS", int(db.PoolMinConns))),
		PoolMaxConnLifetime:   dur("DB_POOL_MAX_CONN_LIFETIME", db.PoolMaxConnLifetime),
		PoolMaxConnIdleTime:   dur("DB_POOL_MAX_CONN_IDLE_TIME", db.PoolMaxConnIdleTime),
		PoolHealthCheckPeriod: dur("DB_POOL_HEALTH_CHECK_PERIOD", db.PoolHealthCheckPeriod),
	}

	rc := cfg.Redis
	cfg.Redis = RedisConfig{
		Host:     def(opt("REDIS_HOST", rc.Host), "localhost"),
		Port:     def(opt("REDIS_PORT", rc.Port), "6379"),
		Password: opt("REDIS_PASSWORD", rc.Password),
		DB:       num("REDIS_DB", rc.DB),
		TTL:      dur("REDIS_TTL", rc.TTL),
	}
	if cfg.Redis.TTL <= 0 {
		cfg.Redis.TTL = 600 * time.Second
	}

	cfg.Log = logger.Config{
		Level:        def(opt("LOG_LEVEL", cfg.Log.Level), "info"),
		Format:       def(opt("LOG_FORMAT", cfg.Log.Format), "json"),
		TimeFormat:   opt("LOG_TIME_FORMAT", cfg.Log.TimeFormat),
		ReportCaller: cfg.Log.ReportCaller || opt("LOG_REPORT_CALLER", "") == "true",
	}

	ch := cfg.Chat
	cfg.Chat = ChatConfig{
		ThinkingMin:       dur("CHAT_THINKING_MIN", ch.ThinkingMin),
		ThinkingJitter:    dur("CHAT_THINKING_JITTER", ch.ThinkingJitter),
		MessagesPerSecond: ch.MessagesPerSecond,
		MessageBurst:      num("CHAT_MESSAGE_BURST", ch.MessageBurst),
	}
	if raw := strings.TrimSpace(os.Getenv("CHAT_MESSAGES_PER_SECOND")); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			invalid = append(invalid, "CHAT_MESSAGES_PER_SECOND")
		} else {
			cfg.Chat.MessagesPerSecond = v
		}
	}
	if cfg.Chat.ThinkingMin == 0 && cfg.Chat.ThinkingJitter == 0 {
		cfg.Chat.ThinkingMin = 800 * time.Millisecond
		cfg.Chat.ThinkingJitter = 800 * time.Millisecond
	}
	if cfg.Chat.MessagesPerSecond <= 0 {
		cfg.Chat.MessagesPerSecond = 2
	}
	if cfg.Chat.MessageBurst <= 0 {
		cfg.Chat.MessageBurst = 5
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}
