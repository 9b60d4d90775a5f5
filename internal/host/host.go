// Package host describes the application the reporter is embedded in.
package host

import (
	"github.com/atom/exception-reporting/internal/app/appconfig"
	"github.com/atom/exception-reporting/internal/model"
)

// Environment gives access to the state of the host application at report time.
type Environment interface {
	// AppVersion is the version of the host application.
	AppVersion() string
	// ResourcePath is the host application's own install directory.
	ResourcePath() string
	// ActivePackages lists the currently active extensions. A nil result means none.
	ActivePackages() []model.Package
}

// Static is an Environment with fixed values.
type Static struct {
	Version   string
	Resources string
	Packages  []model.Package
}

var _ Environment = (*Static)(nil)

func (s *Static) AppVersion() string { return s.Version }

func (s *Static) ResourcePath() string { return s.Resources }

func (s *Static) ActivePackages() []model.Package { return s.Packages }

// FromConfig builds the Environment of a standalone host from configuration, reading the active
// packages from the configured manifest if any.
func FromConfig(conf *appconfig.Config) (Environment, error) {
	env := &Static{
		Version:   conf.AppVersion,
		Resources: conf.ResourcePath,
	}
	if conf.PackageManifest != "" {
		packages, err := LoadManifest(conf.PackageManifest)
		if err != nil {
			return nil, err
		}
		env.Packages = packages
	}
	return env, nil
}
