package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type EnvConfig struct {
	ApplicationName string
	ContextPath     string
	OpenWeatherKey  string
}

var Env *EnvConfig

func init() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(getEnvOrDefault("ENV_FILE_PATH", ".env"))

	viper.AutomaticEnv()

	Env = &EnvConfig{
		ApplicationName: getStringOrDefault("APPLICATION_NAME", "weather-app"),
		ContextPath:     getStringOrDefault("CONTEXT_PATH", ""),
		OpenWeatherKey:  viper.GetString("OPENWEATHER_API_KEY"),
	}
}

func getStringOrDefault(key, defaultValue string) string {
	value := viper.GetString(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return defaultValue
}
