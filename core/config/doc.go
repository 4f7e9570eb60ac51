// Package config provides configuration management for the content sync
// service.
//
// It utilizes Viper for loading configuration from environment variables
// and an optional .env file.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key, primary language)
//   - Database: MySQL connection details
//   - Storage: S3/MinIO credentials and bucket settings for media
//   - Log: Logging level and format
//   - Content: batch size and background drain interval
//   - Drafts: autosave debounce window
//   - Structure: page manifest and sync state paths
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
