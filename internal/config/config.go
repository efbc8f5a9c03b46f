package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string        `yaml:"addr"`
	APITimeout   time.Duration `yaml:"timeout"`
	DatabasePath string        `yaml:"database_path"`
}

// LoadConfig builds the configuration from environment variables, optionally
// overridden by a YAML file. A .env file in the working directory is loaded
// first, if present, so local deployments can keep store settings there.
func LoadConfig(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	cfg := &Config{
		Addr:         getEnv("MASAS_ADDR", ":8080"),
		APITimeout:   15 * time.Second,
		DatabasePath: getEnv("MASAS_DATABASE_PATH", "masas.db"),
	}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// loadDotEnv loads environment variables from a .env file. A missing file is
// not an error. Existing environment variables are not overridden.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load(path)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
