package resource

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"regexp"
	"time"

	"github.com/spf13/viper"

	"weather-app/configs"
)

var properties = viper.New()
var envPattern = regexp.MustCompile(`\$\{([^:}]+)(?::([^}]*))?}`)

// init loads application properties from PROPERTIES_FILE_PATH, or the bundled application.yml
func init() {
	var err error
	if value, ok := os.LookupEnv("PROPERTIES_FILE_PATH"); ok {
		err = Init(value)
	} else {
		err = Load(configs.ApplicationYAML)
	}
	if err != nil {
		log.Fatalf("Fail to read properties: %v", err)
	}
}

// Init replaces the loaded properties with the YAML file at filepath.
func Init(filepath string) error {
	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("read %s: %w", filepath, err)
	}
	return Load(content)
}

// Load replaces the loaded properties with the given YAML document, resolving ${ENV:default} placeholders.
func Load(content []byte) error {
	raw := viper.New()
	raw.SetConfigType("yml")
	if err := raw.ReadConfig(bytes.NewReader(content)); err != nil {
		return err
	}

	resolved := viper.New()
	resolveProperties("", raw.AllSettings(), resolved)
	properties = resolved
	return nil
}

// Set overrides a single property.
func Set(key string, value any) {
	properties.Set(key, value)
}

// resolveProperties walks the YAML tree recursively
func resolveProperties(prefix string, data map[string]any, result *viper.Viper) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			result.Set(fullKey, resolveEnvVariable(v))
		case map[string]any:
			resolveProperties(fullKey, v, result)
		default:
			result.Set(fullKey, v)
		}
	}
}

// resolveEnvVariable replaces every ${NAME:default} in value with the environment value or its default
func resolveEnvVariable(value string) string {
	return envPattern.ReplaceAllStringFunc(value, func(match string) string {
		groups := envPattern.FindStringSubmatch(match)
		if envValue, exists := os.LookupEnv(groups[1]); exists {
			return envValue
		}
		return groups[2]
	})
}

func Get(key string) any {
	return properties.Get(key)
}

func GetString(key string) string {
	return properties.GetString(key)
}

func GetBool(key string) bool {
	return properties.GetBool(key)
}

func GetDuration(key string) time.Duration {
	return properties.GetDuration(key)
}

func GetInt(key string) int {
	return properties.GetInt(key)
}

func GetStringSlice(key string) []string {
	return properties.GetStringSlice(key)
}
