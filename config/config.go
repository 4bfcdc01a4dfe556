package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Search struct {
		ApiKey   string `yaml:"apiKey"`
		EngineId string `yaml:"engineId"`
	} `yaml:"search"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`
}

const (
	defaultPort  = 8000
	defaultModel = "gemini-1.5-flash"
)

// LoadConfig reads the optional YAML config file and applies environment
// overrides. A missing file is not an error: the service can run entirely from
// environment variables (GOOGLE_SEARCH_KEY, SEARCH_ENGINE_ID, GEMINI_API_KEY),
// with a .env file honored when present.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load() // a .env file is optional in every environment

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if v := os.Getenv("GOOGLE_SEARCH_KEY"); v != "" {
		cfg.Search.ApiKey = v
	}
	if v := os.Getenv("SEARCH_ENGINE_ID"); v != "" {
		cfg.Search.EngineId = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.Gemini.ApiKey = v
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Gemini.Model == "" {
		cfg.Gemini.Model = defaultModel
	}

	return &cfg, nil
}
