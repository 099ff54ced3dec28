package config

import (
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"mediavault/internal/application/usecase"
	"mediavault/internal/infrastructure/api"
	"mediavault/internal/infrastructure/broker"
	"mediavault/internal/infrastructure/cdn"
	"mediavault/internal/infrastructure/database"
	"mediavault/pkg/logger"
)

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	Default         DefaultConfig          `yaml:"default"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	Session         usecase.SessionConfig  `yaml:"session"`
	UploadAuth      usecase.IssuerConfig   `yaml:"upload_auth"`
	CDN             cdn.Config             `yaml:"cdn"`
	API             api.Config             `yaml:"api"`
	Client          ClientConfig           `yaml:"client"`
	Logger          logger.Config          `yaml:"logger"`
}

type DefaultConfig struct {
	Address       string `yaml:"address"`
	PublicBaseURL string `yaml:"-"`
}

type ClientConfig struct {
	MaxFileSizeInMB int64 `yaml:"max_file_size_in_mb"`
}

func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Session.Secret = os.Getenv("SESSION_SECRET")
	config.UploadAuth.PrivateKey = os.Getenv("UPLOAD_PRIVATE_KEY")
	config.UploadAuth.PublicKey = os.Getenv("UPLOAD_PUBLIC_KEY")
	config.Default.PublicBaseURL = os.Getenv("PUBLIC_BASE_URL")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config. A missing database
// connection string is fatal: the process must not serve traffic.
func (c *Config) basicCheck() error {
	if c.DBConfig.URI == "" {
		return Error{reason: "DATABASE_URI is not set"}
	}
	if c.Session.Secret == "" {
		return Error{reason: "SESSION_SECRET is not set"}
	}

	return nil
}
