package config

// Config represents the complete configuration structure
type Config struct {
	GitHub  GitHubConfig  `mapstructure:"github"`
	Safety  SafetyConfig  `mapstructure:"safety"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// GitHubConfig holds GitHub API connection details
type GitHubConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	Username   string `mapstructure:"username"`
	Password   string `mapstructure:"password"`
	OAuthToken string `mapstructure:"oauth_token"`
	Accept     string `mapstructure:"accept"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	DryRun bool `mapstructure:"dry_run"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
