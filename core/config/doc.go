// Package config provides configuration management for fixresx.
//
// It utilizes Viper for loading configuration from an optional fixresx.yaml
// file, a .env file and environment variables. Defaults come from the
// `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Paths: canonical, template and working directories, log and license files
//   - Reconcile: strict/lenient policy and designer index cache TTL
//   - Log: logging level and format
//   - Server: HTTP port and API key for `fixresx serve`
//   - Storage: optional S3/MinIO archive of runs
//   - Database: optional run history (MySQL or SQLite)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Paths.WorkingDir)
package config
