package config

// NewDeploymentsForTest creates a Deployments config for testing purposes
func NewDeploymentsForTest(configPath, rosterPath string) *Deployments {
	return &Deployments{
		configPath: configPath,
		rosterPath: rosterPath,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}
