package host

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"

	"github.com/atom/exception-reporting/internal/model"
)

var validate = validator.New()

// LoadManifest reads the active packages of the host from a JSON file. See ParseManifest.
func LoadManifest(path string) ([]model.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read package manifest")
	}
	packages, err := ParseManifest(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid package manifest %s", path)
	}
	return packages, nil
}

// ParseManifest parses a list of active packages in the shape the host reports them:
//
//	[{"name": "tree-view", "path": "/opt/atom/resources/app.asar/node_modules/tree-view", "metadata": {"version": "0.228.0"}}]
//
// A top-level "version" is accepted when "metadata.version" is absent.
func ParseManifest(data []byte) ([]model.Package, error) {
	if !gjson.ValidBytes(data) {
		return nil, errors.New("malformed JSON")
	}
	root := gjson.ParseBytes(data)
	if !root.IsArray() {
		return nil, errors.New("expect a JSON array of packages")
	}

	packages := []model.Package{}
	var err error
	root.ForEach(func(_, value gjson.Result) bool {
		version := value.Get("metadata.version")
		if !version.Exists() {
			version = value.Get("version")
		}
		pkg := model.Package{
			Name:    value.Get("name").String(),
			Path:    value.Get("path").String(),
			Version: version.String(),
		}
		if verr := validate.Struct(pkg); verr != nil {
			err = errors.Wrapf(verr, "package #%d", len(packages))
			return false
		}
		packages = append(packages, pkg)
		return true
	})
	if err != nil {
		return nil, err
	}
	return packages, nil
}
