package consent

import (
	"context"
	"net/url"
	"os"

	"github.com/goccy/go-json"
	"github.com/peterbourgon/diskv/v3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const diskCacheSizeMax = 64 * 1024

// DiskStore persists one JSON file per record under a base directory.
type DiskStore struct {
	d *diskv.Diskv
}

var _ Store = (*DiskStore)(nil)

func NewDiskStore(basePath string) (*DiskStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errors.Wrap(err, "consent: failed to create disk store directory")
	}

	// request names are free-form, escape them into a single flat file name
	transform := func(key string) *diskv.PathKey {
		return &diskv.PathKey{
			Path:     []string{},
			FileName: url.PathEscape(key),
		}
	}
	inverseTransform := func(pathKey *diskv.PathKey) string {
		key, err := url.PathUnescape(pathKey.FileName)
		if err != nil {
			return pathKey.FileName
		}
		return key
	}

	return &DiskStore{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			AdvancedTransform: transform,
			InverseTransform:  inverseTransform,
			CacheSizeMax:      diskCacheSizeMax,
		}),
	}, nil
}

func (s *DiskStore) Get(_ context.Context, key string) (*Record, error) {
	if !s.d.Has(key) {
		return nil, ErrNotFound
	}
	b, err := s.d.Read(key)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, errors.Wrap(err, "consent: failed to read record")
	}

	var record Record
	if err := json.Unmarshal(b, &record); err != nil {
		// still a record: presence is what counts
		log.Warn().Err(err).Str("key", key).Msg("consent: unreadable record on disk")
		return &Record{}, nil
	}
	return &record, nil
}

func (s *DiskStore) Set(_ context.Context, key string, record Record) error {
	b, err := json.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "consent: failed to encode record")
	}
	if err := s.d.Write(key, b); err != nil {
		return errors.Wrap(err, "consent: failed to write record")
	}
	return nil
}

func (s *DiskStore) Delete(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	if err := s.d.Erase(key); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "consent: failed to erase record")
	}
	return nil
}
