package configs

import (
	"os"
	"testing"
)

// setupTestEnv sets up required environment variables for config unmarshaling
func setupTestEnv() {
	os.Setenv("APP_DEBUG", "false")
	os.Setenv("APP_ENV", "test")
	os.Setenv("APP_PORT", "8080")
	os.Setenv("POSTGRES_HOST", "localhost")
	os.Setenv("POSTGRES_PORT", "5432")
	os.Setenv("POSTGRES_USERNAME", "test")
	os.Setenv("POSTGRES_PASSWORD", "test")
	os.Setenv("POSTGRES_DATABASE", "test")
	os.Setenv("POSTGRES_SSLMODE", "false")
	os.Setenv("LINE_CHANNEL_SECRET", "line-secret")
	os.Setenv("LINE_CHANNEL_TOKEN", "line-token")
	os.Setenv("LINE_ORGANIZATION_ID", "c0a80101-0000-0000-0000-000000000001")
	os.Setenv("META_VERIFY_TOKEN", "meta-verify")
	os.Setenv("META_PAGE_ACCESS_TOKEN", "meta-page-token")
	os.Setenv("META_GRAPH_BASE_URL", "https://graph.example.test")
	os.Setenv("META_ORGANIZATION_ID", "c0a80101-0000-0000-0000-000000000002")
	// Cache default - 0 means the application layer applies its default TTL
	os.Setenv("CACHE_RULE_TTL", "0")
}

// cleanupTestEnv cleans up environment variables after tests
func cleanupTestEnv() {
	os.Unsetenv("APP_DEBUG")
	os.Unsetenv("APP_ENV")
	os.Unsetenv("APP_PORT")
	os.Unsetenv("POSTGRES_HOST")
	os.Unsetenv("POSTGRES_PORT")
	os.Unsetenv("POSTGRES_USERNAME")
	os.Unsetenv("POSTGRES_PASSWORD")
	os.Unsetenv("POSTGRES_DATABASE")
	os.Unsetenv("POSTGRES_SSLMODE")
	os.Unsetenv("LINE_CHANNEL_SECRET")
	os.Unsetenv("LINE_CHANNEL_TOKEN")
	os.Unsetenv("LINE_ORGANIZATION_ID")
	os.Unsetenv("META_VERIFY_TOKEN")
	os.Unsetenv("META_PAGE_ACCESS_TOKEN")
	os.Unsetenv("META_GRAPH_BASE_URL")
	os.Unsetenv("META_ORGANIZATION_ID")
	os.Unsetenv("CACHE_RULE_TTL")
}

// TestMetaStructFieldsUnmarshal tests that Meta struct fields are properly unmarshaled from config
func TestMetaStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	// Initialize config - using relative path from configs directory
	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Meta.VerifyToken != "meta-verify" {
		t.Errorf("Expected Meta.VerifyToken to be 'meta-verify', got %q", cfg.Meta.VerifyToken)
	}
	if cfg.Meta.PageAccessToken != "meta-page-token" {
		t.Errorf("Expected Meta.PageAccessToken to be 'meta-page-token', got %q", cfg.Meta.PageAccessToken)
	}
	if cfg.Meta.GraphBaseURL != "https://graph.example.test" {
		t.Errorf("Expected Meta.GraphBaseURL to be overridden, got %q", cfg.Meta.GraphBaseURL)
	}
	if cfg.Meta.OrganizationID != "c0a80101-0000-0000-0000-000000000002" {
		t.Errorf("Expected Meta.OrganizationID to be overridden, got %q", cfg.Meta.OrganizationID)
	}
}

// TestLineStructFieldsUnmarshal tests that Line struct fields are properly unmarshaled from config
func TestLineStructFieldsUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Line.ChannelSecret != "line-secret" {
		t.Errorf("Expected Line.ChannelSecret to be 'line-secret', got %q", cfg.Line.ChannelSecret)
	}
	if cfg.Line.ChannelToken != "line-token" {
		t.Errorf("Expected Line.ChannelToken to be 'line-token', got %q", cfg.Line.ChannelToken)
	}
	if cfg.Line.OrganizationID != "c0a80101-0000-0000-0000-000000000001" {
		t.Errorf("Expected Line.OrganizationID to be overridden, got %q", cfg.Line.OrganizationID)
	}
}

// TestCacheRuleTTLUnmarshal tests that Cache.RuleTTL is properly unmarshaled from config
func TestCacheRuleTTLUnmarshal(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("CACHE_RULE_TTL", "120")

	InitViper(".", "test")

	cfg := GetViper()

	if cfg.Cache.RuleTTL != 120 {
		t.Errorf("Expected Cache.RuleTTL to be 120, got %d", cfg.Cache.RuleTTL)
	}
}

// TestCacheRuleTTLZeroRequiresApplicationDefault tests that a zero TTL signals the application layer to apply its default
// When CACHE_RULE_TTL=0, the application layer (in protocal/http.go) should apply the default
func TestCacheRuleTTLZeroRequiresApplicationDefault(t *testing.T) {
	setupTestEnv()
	defer cleanupTestEnv()

	os.Setenv("CACHE_RULE_TTL", "0")

	InitViper(".", "test")

	cfg := GetViper()

	// The config layer passes through zero values - application layer applies the default
	if cfg.Cache.RuleTTL != 0 {
		t.Errorf("Expected Cache.RuleTTL to be 0, got %d", cfg.Cache.RuleTTL)
	}
}
