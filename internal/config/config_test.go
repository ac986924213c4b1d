package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				os.Setenv(tt.key, tt.envValue)
				defer os.Unsetenv(tt.key)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestParseAdminIDs(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		expected    []int64
		expectError bool
	}{
		{
			name:     "empty",
			raw:      "",
			expected: nil,
		},
		{
			name:     "single id",
			raw:      "123",
			expected: []int64{123},
		},
		{
			name:     "several ids with spaces",
			raw:      "123, 456 ,789",
			expected: []int64{123, 456, 789},
		},
		{
			name:     "trailing comma",
			raw:      "123,",
			expected: []int64{123},
		},
		{
			name:        "not a number",
			raw:         "123,abc",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := parseAdminIDs(tt.raw)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, ids)
			}
		})
	}
}

func TestConfig_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		admins   []int64
		userID   int64
		expected bool
	}{
		{
			name:     "listed admin",
			admins:   []int64{1, 2},
			userID:   2,
			expected: true,
		},
		{
			name:     "not listed",
			admins:   []int64{1, 2},
			userID:   3,
			expected: false,
		},
		{
			name:     "empty list leaves commands open",
			admins:   nil,
			userID:   3,
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{AdminIDs: tt.admins}
			assert.Equal(t, tt.expected, cfg.IsAdmin(tt.userID))
		})
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	keys := []string{"BOT_TOKEN", "YANDEX_API_KEY", "YANDEX_FOLDER_ID", "DB_PASSWORD", "ADMIN_IDS"}

	// Save original env and clean up after test
	original := make(map[string]string, len(keys))
	for _, key := range keys {
		original[key] = os.Getenv(key)
		os.Unsetenv(key)
	}
	defer func() {
		for key, value := range original {
			if value != "" {
				os.Setenv(key, value)
			} else {
				os.Unsetenv(key)
			}
		}
	}()

	// All required fields missing
	_, err := Load()
	assert.Error(t, err)

	// Fill them one by one; the last one completes the config
	os.Setenv("BOT_TOKEN", "token")
	_, err = Load()
	assert.Error(t, err)

	os.Setenv("YANDEX_API_KEY", "api-key")
	_, err = Load()
	assert.Error(t, err)

	os.Setenv("YANDEX_FOLDER_ID", "folder")
	_, err = Load()
	assert.Error(t, err)

	os.Setenv("DB_PASSWORD", "secret")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.BotToken)
	assert.Equal(t, "api-key", cfg.GPT.APIKey)
	assert.Equal(t, "folder", cfg.GPT.FolderID)
	assert.Equal(t, DefaultGPTURL, cfg.GPT.URL)
	assert.Equal(t, "yandexgpt-lite", cfg.GPT.Model)
	assert.Equal(t, "personas.yml", cfg.PersonasFile)
}
