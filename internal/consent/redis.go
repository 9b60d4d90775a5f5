package consent

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/vmihailenco/msgpack/v5"
)

// RedisStore shares records between host instances through Redis.
type RedisStore struct {
	client *redis.Client
	prefix string
}

var _ Store = (*RedisStore)(nil)

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix + ":",
	}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) (*Record, error) {
	key = s.key(key)
	resp, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		log.Error().Err(err).Str("key", key).Msg("consent: failed to get record from redis")
		return nil, errors.Wrap(err, "consent: redis get")
	}

	var record Record
	if err := msgpack.Unmarshal(resp, &record); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("consent: failed to unmarshal record from redis")
		return &Record{}, nil
	}
	return &record, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, record Record) error {
	key = s.key(key)
	if l := log.Trace(); l.Enabled() {
		l.Str("key", key).Msg("consent: setting record to redis")
	}
	b, err := msgpack.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "consent: failed to marshal record with msgpack")
	}
	if err := s.client.Set(ctx, key, b, 0).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("consent: failed to set record to redis")
		return errors.Wrap(err, "consent: redis set")
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	key = s.key(key)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("consent: failed to delete record from redis")
		return errors.Wrap(err, "consent: redis del")
	}
	return nil
}
