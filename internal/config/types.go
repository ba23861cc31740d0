package config

// Config holds all configuration for the application.
type Config struct {
	DBName        string
	MigrationsDir string
	Port          string
	Slack         SlackConfig
	Turso         TursoConfig
}
type SlackConfig struct {
	Token     string
	ChannelID string
	// DryRun logs outgoing messages instead of posting them.
	DryRun bool
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
