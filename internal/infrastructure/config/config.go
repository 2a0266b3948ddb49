package config

import (
	"os"
	"strconv"

	usecasecontract "github.com/mikiasgoitom/Vendora/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	TreeRequirePost  bool
	MaxCommentLength int
	DefaultPageSize  int
	MaxPageSize      int
}

// NewConfig creates a new Config instance, loading values from environment
// variables.
func NewConfig() usecasecontract.IConfigProvider {
	return &Config{
		TreeRequirePost:  getEnvAsBool("TREE_REQUIRE_POST", true),
		MaxCommentLength: getEnvAsInt("MAX_COMMENT_LENGTH", 1000),
		DefaultPageSize:  getEnvAsInt("DEFAULT_PAGE_SIZE", 20),
		MaxPageSize:      getEnvAsInt("MAX_PAGE_SIZE", 100),
	}
}

// GetTreeRequirePost returns whether tree reads of a nonexistent post
// surface NotFound (true) or an empty tree (false).
func (c *Config) GetTreeRequirePost() bool {
	return c.TreeRequirePost
}

// GetMaxCommentLength returns the maximum accepted comment length.
func (c *Config) GetMaxCommentLength() int {
	return c.MaxCommentLength
}

// GetDefaultPageSize returns the page size applied when none is requested.
func (c *Config) GetDefaultPageSize() int {
	return c.DefaultPageSize
}

// GetMaxPageSize returns the largest page size a caller may request.
func (c *Config) GetMaxPageSize() int {
	return c.MaxPageSize
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a
// default value.
func getEnvAsInt(name string, fallback int) int {
	valueStr := getEnv(name, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as a boolean or return a
// default value.
func getEnvAsBool(name string, fallback bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}
	return fallback
}
