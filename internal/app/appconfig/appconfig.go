package appconfig

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/atom/exception-reporting/internal/app/appcontext"
)

const EnvPrefix = "exception_reporting"

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err := envconfig.Process(EnvPrefix, &config)
	if err != nil {
		_ = envconfig.Usage(EnvPrefix, &config)
		return nil, errors.Wrap(err, "failed to parse configuration")
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}

func (c *ConfigSpec) normalize() error {
	if c.APIKey == "" {
		return errors.New("missing API key: set EXCEPTION_REPORTING_API_KEY")
	}

	switch c.ConsentStoreDriver {
	case DriverDisk, DriverMemory, DriverRedis:
	default:
		return errors.Errorf("invalid consent store driver %q: expect one of disk, memory, redis", c.ConsentStoreDriver)
	}

	if c.StackTraceLimit <= 0 {
		return errors.Errorf("invalid stack trace limit %d: must be positive", c.StackTraceLimit)
	}

	if c.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.Wrap(err, "failed to resolve project root")
		}
		c.ProjectRoot = wd
	}

	return nil
}
