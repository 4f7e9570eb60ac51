package structure

// Config holds configuration for the structure sync feature.
type Config struct {
	// ManifestPath optionally overrides the bundled page manifest.
	ManifestPath string `mapstructure:"manifest_path" default:""`
	// StatePath is where the last-synced marker is persisted.
	StatePath string `mapstructure:"state_path" default:"structure_state.json"`
	// SuccessRevertMS is how long the success state is shown before
	// reverting to idle, in milliseconds.
	SuccessRevertMS int `mapstructure:"success_revert_ms" default:"3000"`
}
