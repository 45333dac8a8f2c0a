package config

import (
	"os"
)

// Environment is the runtime environment the process was started in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the runtime environment. CI detection is
// automatic; everything else comes from the ENV variable and defaults to
// development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}

	switch os.Getenv("ENV") {
	case "production":
		return Production
	case "test":
		return Test
	case "development":
		return Development
	default:
		return Development
	}
}

// IsDevelopment reports whether the process runs in development.
func IsDevelopment() bool {
	return GetEnvironment() == Development
}

// IsTest reports whether the process runs under go test.
func IsTest() bool {
	return GetEnvironment() == Test
}

// IsCI reports whether the process runs in CI.
func IsCI() bool {
	return GetEnvironment() == CI
}

// IsProduction reports whether the process runs in production.
func IsProduction() bool {
	return GetEnvironment() == Production
}
