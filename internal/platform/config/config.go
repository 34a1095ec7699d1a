package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Snowflake
	InstanceID int64 // 实例编号（0~1023），由部署方保证各副本不同；范围校验在 idgen.New 里做

	// 短码编码方案：base62 | sqids
	Codec string

	// 日志配置信息
	LogLevel    slog.Level
	LogFormat   string
	ServiceName string
}

func Load() Config {
	cfg := Config{
		InstanceID: 0,
		Codec:      "base62",

		LogLevel:    slog.LevelInfo,
		LogFormat:   "json",
		ServiceName: "idgen",
	}

	_ = godotenv.Load(".env")

	if v, ok := os.LookupEnv("SNOWFLAKE_INSTANCE_ID"); ok && v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.InstanceID = n
		}
	}
	if v, ok := os.LookupEnv("SHORTCODE_CODEC"); ok && v != "" {
		cfg.Codec = strings.ToLower(v)
	}

	if v, ok := os.LookupEnv("LOG_LEVEL"); ok && v != "" {
		switch strings.ToLower(v) {
		case "debug":
			cfg.LogLevel = slog.LevelDebug
		case "info":
			cfg.LogLevel = slog.LevelInfo
		case "warn", "warning":
			cfg.LogLevel = slog.LevelWarn
		case "error":
			cfg.LogLevel = slog.LevelError
		default:
			cfg.LogLevel = slog.LevelInfo
		}
	}
	if v, ok := os.LookupEnv("LOG_FORMAT"); ok && v != "" {
		cfg.LogFormat = v
	}
	if v, ok := os.LookupEnv("SERVICE_NAME"); ok && v != "" {
		cfg.ServiceName = v
	}

	return cfg
}
