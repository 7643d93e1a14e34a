package config

import (
	"fmt"
	"os"
)

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// DSN builds the MySQL connection string. parseTime is required so GORM can
// scan DATETIME columns into time.Time.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type Config struct {
	Port             string
	DB               DBConfig
	RedisAddr        string
	RedisPassword    string
	JWTSecret        string
	AssistantAPIKey  string
	AssistantBaseURL string
	AssistantModel   string
}

func LoadConfig() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DB: DBConfig{
			Host:     getEnv("MYSQL_HOST", "localhost"),
			Port:     getEnv("MYSQL_PORT", "3306"),
			User:     getEnv("MYSQL_USER", "root"),
			Password: getEnv("MYSQL_PASSWORD", ""),
			Name:     getEnv("MYSQL_DATABASE", "nxt"),
		},
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me-in-production"),
		AssistantAPIKey:  os.Getenv("ASSISTANT_API_KEY"),
		AssistantBaseURL: getEnv("ASSISTANT_BASE_URL", "https://api.deepseek.com/v1"),
		AssistantModel:   getEnv("ASSISTANT_MODEL", "deepseek-chat"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
