package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Load reads configuration from the given file, falling back to DefaultConfig
// values for anything the file does not set. Environment variables override
// file values (COMMERCE_SERVER_PORT → server.port). An empty path means
// defaults + environment only.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("COMMERCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		ext := filepath.Ext(path)
		v.SetConfigType(strings.TrimPrefix(ext, "."))
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()

	v.SetDefault("server.host", def.Server.Host)
	v.SetDefault("server.port", def.Server.Port)
	v.SetDefault("adminserver.host", def.AdminServer.Host)
	v.SetDefault("adminserver.port", def.AdminServer.Port)
	v.SetDefault("mysql.dsn", def.MySQL.DSN)
	v.SetDefault("redis.addr", def.Redis.Addr)
	v.SetDefault("rabbitmq.url", def.RabbitMQ.URL)
	v.SetDefault("auth.nodes", def.Auth.Nodes)
	v.SetDefault("auth.hashreplicas", def.Auth.HashReplicas)
	v.SetDefault("auth.tokencachettlseconds", def.Auth.TokenCacheTTLSeconds)
	v.SetDefault("jwt.secret", def.JWT.Secret)
	v.SetDefault("upload.dir", def.Upload.Dir)
	v.SetDefault("upload.maxfilesizebytes", def.Upload.MaxFileSizeBytes)
	v.SetDefault("logger.level", def.Logger.Level)
	v.SetDefault("logger.encoding", def.Logger.Encoding)
}
