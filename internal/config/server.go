package config

import (
	"strings"

	"derivatives-case-study/internal/logging"

	"github.com/spf13/viper"
)

// Server holds the HTTP server settings. Values come from an optional file
// and from API_* environment variables, environment winning.
// API_CORS_ORIGINS is a comma-separated list.
type Server struct {
	Port        string         `mapstructure:"port"`
	Env         string         `mapstructure:"env"`
	ContractDir string         `mapstructure:"contract_dir"`
	CORSOrigins []string       `mapstructure:"cors_origins"`
	Log         logging.Config `mapstructure:"log"`
}

func (s Server) Production() bool {
	return s.Env == "production"
}

// LoadServer reads server settings. path may be empty.
func LoadServer(path string) (*Server, error) {
	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("env", "development")
	v.SetDefault("contract_dir", "examples/contracts")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/api.log")
	v.SetDefault("log.max_size", 100)
	v.SetDefault("log.max_backups", 10)
	v.SetDefault("log.max_age", 30)
	v.SetDefault("log.compress", true)

	v.SetEnvPrefix("API")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	}

	var s Server
	if err := v.Unmarshal(&s); err != nil {
		return nil, err
	}
	return &s, nil
}
