package infra

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/consent"
	"github.com/atom/exception-reporting/internal/pkg/observability"
)

// ConsentStore opens the consent store selected by the configured driver. The redis client is
// only dialed when the redis driver is selected.
func ConsentStore(lc fx.Lifecycle, conf *appconfig.Config) (consent.Store, error) {
	switch conf.ConsentStoreDriver {
	case appconfig.DriverMemory:
		log.Warn().Msg("infra: consent: using in-memory store, consent prompts will be repeated on restart")
		return consent.NewMemoryStore(), nil
	case appconfig.DriverDisk:
		return consent.NewDiskStore(conf.ConsentStorePath)
	case appconfig.DriverRedis:
		client, err := Redis(conf)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return client.Close()
			},
		})
		return consent.NewRedisStore(client, observability.ServiceName), nil
	default:
		return nil, errors.Errorf("infra: consent: unknown store driver %q", conf.ConsentStoreDriver)
	}
}
