package configs

import (
	"fmt"
	"strings"

	"log-query/internal/shared/validators"

	"github.com/spf13/viper"
)

const envPrefix = "LOGQUERY"

var defaults = map[string]any{
	"log.level": "info",

	"aggregation.mapper_count":     4,
	"aggregation.partition_count":  8,
	"aggregation.chunk_size":       1024,
	"aggregation.map_side_combine": true,
	"aggregation.on_record_error":  RecordErrorPolicySkip,

	"output.format":    OutputFormatText,
	"output.store_dir": "",

	"server.port":                8080,
	"server.read_header_timeout": 5,
	"server.read_timeout":        30,
	"server.write_timeout":       30,
	"server.idle_timeout":        60,
	"server.max_body_bytes":      16 * 1024 * 1024,
}

// LoadConfig builds configuration from defaults, an optional YAML file and
// LOGQUERY_* environment variables (e.g. LOGQUERY_AGGREGATION_MAPPER_COUNT),
// in increasing order of precedence, and validates the result.
// An empty configPath skips the file layer.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validators.New()
	if err := validate.Struct(&cfg); err != nil {
		var validationErrors []string
		if ve, ok := err.(validators.ValidationErrors); ok {
			for _, e := range ve {
				validationErrors = append(validationErrors, formatValidationError(e))
			}
		}
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validationErrors, ", "))
	}

	return &cfg, nil
}

// formatValidationError formats a single validation error into a readable string.
func formatValidationError(e validators.FieldError) string {
	field := e.Field()
	tag := e.Tag()

	// "Config.Aggregation.MapperCount" -> "aggregation.mappercount"
	if e.StructNamespace() != "" {
		parts := strings.Split(e.StructNamespace(), ".")
		if len(parts) >= 2 {
			field = strings.ToLower(strings.Join(parts[1:], "."))
		}
	}

	switch tag {
	case "required":
		return fmt.Sprintf("%s (required)", field)
	case "min", "max", "oneof":
		return fmt.Sprintf("%s (%s=%s)", field, tag, e.Param())
	default:
		return fmt.Sprintf("%s (%s)", field, tag)
	}
}
