package main

import (
	"flag"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/hireloop/slotd/internal/api"
	"github.com/hireloop/slotd/internal/repo"
	"github.com/hireloop/slotd/internal/sweeper"
	"github.com/hireloop/slotd/pkg/environment"
	"github.com/hireloop/slotd/pkg/errors"
)

type Config struct {
	Environment environment.Env `yaml:"environment"`
	API         api.Config      `yaml:"api"`
	Mongo       repo.Config     `yaml:"mongo"`
	Sweeper     sweeper.Config  `yaml:"sweeper"`
}

func loadConfig() (*Config, error) {
	envFlag := flag.String("env", "", "environment (dev, prod)")
	flag.Parse()

	// secrets may come from a local .env; absence is fine
	_ = godotenv.Load()

	path, err := filepath.Abs("config.yaml")
	if err != nil {
		return nil, errors.WrapFail(err, "build path to config")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapFail(err, "read \"config.yaml\"")
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, errors.WrapFail(err, "parse yaml")
	}

	applyEnvOverrides(&cfg)

	if *envFlag != "" {
		env, err := environment.Parse(*envFlag)
		if err != nil {
			return nil, errors.WrapFail(err, "parse \"env\" flag")
		}
		cfg.Environment = env
	}

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("MONGO_USERNAME"); v != "" {
		cfg.Mongo.Auth.Username = v
	}
	if v := os.Getenv("MONGO_PASSWORD"); v != "" {
		cfg.Mongo.Auth.Password = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.API.Auth.Secret = v
	}
}
