package configs

const (
	RecordErrorPolicySkip  = "skip"
	RecordErrorPolicyAbort = "abort"

	OutputFormatText = "text"
	OutputFormatJSON = "json"
)

// Config holds all configuration for the application.
type Config struct {
	Log         LogConfig         `mapstructure:"log" validate:"required"`
	Aggregation AggregationConfig `mapstructure:"aggregation" validate:"required"`
	Output      OutputConfig      `mapstructure:"output" validate:"required"`
	Server      ServerConfig      `mapstructure:"server" validate:"required"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,log_level"`
}

// AggregationConfig controls the parallelism of the aggregation engine.
type AggregationConfig struct {
	MapperCount    int    `mapstructure:"mapper_count" validate:"required,min=1,max=1024"`
	PartitionCount int    `mapstructure:"partition_count" validate:"required,min=1,max=1024"`
	ChunkSize      int    `mapstructure:"chunk_size" validate:"required,min=1"` // lines per mapper task
	MapSideCombine bool   `mapstructure:"map_side_combine"`
	OnRecordError  string `mapstructure:"on_record_error" validate:"required,oneof=skip abort"`
}

// OutputConfig holds result emission configuration.
type OutputConfig struct {
	Format   string `mapstructure:"format" validate:"required,oneof=text json"`
	StoreDir string `mapstructure:"store_dir"` // empty disables result persistence
}

// ServerConfig holds server-related configuration. Only cmd/server reads it.
type ServerConfig struct {
	Port              int   `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int   `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int   `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int   `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int   `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
	MaxBodyBytes      int64 `mapstructure:"max_body_bytes" validate:"required,min=1"`
}
