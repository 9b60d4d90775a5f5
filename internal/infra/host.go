package infra

import (
	"github.com/rs/zerolog/log"

	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/host"
	"github.com/atom/exception-reporting/internal/notification"
	"github.com/atom/exception-reporting/internal/transport"
)

func Environment(conf *appconfig.Config) (host.Environment, error) {
	env, err := host.FromConfig(conf)
	if err != nil {
		log.Error().Err(err).Str("manifest", conf.PackageManifest).Msg("infra: host: failed to load package manifest")
		return nil, err
	}
	return env, nil
}

func NotificationCenter() *notification.Center {
	return notification.NewCenter()
}

func NotificationService(center *notification.Center) notification.Service {
	return center
}

func Transport(conf *appconfig.Config) transport.RequestFunc {
	return transport.FromConfig(conf)
}
