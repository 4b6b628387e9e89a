package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	env "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ConfigError marks a failure to resolve configuration before any network
// call is made, as opposed to an API failure during the run.
type ConfigError struct {
	Msg string
	Err error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Config holds environment-derived defaults for the CLI. Flags override
// every field here.
type Config struct {
	APIBaseURL string `env:"API_URL" envDefault:""`
	Token      string `env:"TOKEN" envDefault:""`
	Team       string `env:"TEAM" envDefault:""`
	Project    string `env:"PROJECT" envDefault:""`
}

// Load reads configuration from the environment, including a .env file when
// one is present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DSCTL_"}); err != nil {
		return nil, &ConfigError{Msg: "failed to parse environment", Err: err}
	}
	return &cfg, nil
}

// credentials is the on-disk shape of ~/.dsctl/credentials.json.
type credentials struct {
	AccessToken string `json:"accessToken"`
}

// CredentialsPath returns the location of the credentials file.
func CredentialsPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", &ConfigError{Msg: "failed to get home directory", Err: err}
	}
	return filepath.Join(homeDir, ".dsctl", "credentials.json"), nil
}

// ResolveToken determines the bearer token for API calls. Priority order:
// explicit override (flag), DSCTL_TOKEN, then the accessToken field of the
// credentials file.
func (c *Config) ResolveToken(override string) (string, error) {
	if tok := strings.TrimSpace(override); tok != "" {
		return tok, nil
	}
	if tok := strings.TrimSpace(c.Token); tok != "" {
		return tok, nil
	}

	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return "", &ConfigError{Msg: "no API token found: pass --token, set DSCTL_TOKEN, or run 'dsctl configure'"}
	}
	if err != nil {
		return "", &ConfigError{Msg: fmt.Sprintf("failed to read %s", path), Err: err}
	}

	var creds credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return "", &ConfigError{Msg: fmt.Sprintf("malformed credentials file %s", path), Err: err}
	}
	if strings.TrimSpace(creds.AccessToken) == "" {
		return "", &ConfigError{Msg: fmt.Sprintf("credentials file %s has no accessToken", path)}
	}
	return creds.AccessToken, nil
}

// WriteCredentials stores the token in the credentials file, creating the
// directory as needed. The file is owner-readable only.
func WriteCredentials(token string) (string, error) {
	path, err := CredentialsPath()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", &ConfigError{Msg: "failed to create config directory", Err: err}
	}
	data, err := json.MarshalIndent(credentials{AccessToken: token}, "", "  ")
	if err != nil {
		return "", &ConfigError{Msg: "failed to marshal credentials", Err: err}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", &ConfigError{Msg: fmt.Sprintf("failed to write %s", path), Err: err}
	}
	return path, nil
}
