package test

import (
	"os"

	"github.com/joho/godotenv"
)

type TestConfig struct {
	DBConnString string
}

// Loads integration test config. Returns false when no PostgreSQL
// connection string is configured, in which case such tests are skipped.
func LoadConfig(path string) (TestConfig, bool) {
	godotenv.Load(path)

	connString := os.Getenv("TEST_PG_CONNECTION_STRING")
	if connString == "" {
		return TestConfig{}, false
	}

	return TestConfig{DBConnString: connString}, true
}
