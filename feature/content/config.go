package content

// Config holds configuration for the content sync feature.
type Config struct {
	// BatchSize is the number of rows written per remote batch.
	BatchSize int `mapstructure:"batch_size" default:"50"`
	// DrainIntervalSeconds is how often the background drain task flushes
	// pending changes. Zero disables the drain task; saves then happen only
	// on explicit request.
	DrainIntervalSeconds int `mapstructure:"drain_interval_seconds" default:"30"`
}
