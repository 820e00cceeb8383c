package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// EnvPrefix 环境变量前缀，例如 NOVA_DATABASE_DSN
const EnvPrefix = "NOVA"

var defaults = map[string]any{
	"server.port":               8080,
	"server.mode":               "release",
	"database.driver":           "mysql",
	"database.dsn":              "",
	"database.max_idle":         10,
	"database.max_open":         50,
	"database.max_lifetime":     60,
	"database.auto_migrate":     true,
	"jwt.secret":                "",
	"jwt.issuer":                "novaaff",
	"jwt.access_ttl":            60,
	"jwt.refresh_ttl":           24 * 60,
	"auth.allow_admin_signup":   false,
	"admin.username":            "",
	"admin.email":               "",
	"admin.password":            "",
	"storage.type":              "local",
	"storage.base_path":         "./media",
	"storage.base_url":          "/media",
	"minio.internal_endpoint":   "",
	"minio.external_endpoint":   "",
	"minio.access_key":          "",
	"minio.secret_key":          "",
	"minio.main_bucket":         "novaaff",
	"minio.internal_use_ssl":    false,
	"minio.external_use_ssl":    true,
	"logstash.address":          "",
	"logstash.index":            "logstash-novaaff",
	"logstash.token":            "",
}

// LoadConfig 从 .env、configs/config.yaml 与环境变量加载配置并填充到 Cfg
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 配置文件可选，缺失时完全依赖环境变量
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if cfg.JWT.Secret == "" {
		return errors.New("jwt.secret must be set")
	}

	Cfg = &cfg

	return nil
}
