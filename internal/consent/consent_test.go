package consent

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestKey(t *testing.T) {
	assert.Equal(t, KeyPrefix, Key(""))
	assert.Equal(t, KeyPrefix+".foo", Key("foo"))
	assert.NotEqual(t, Key("foo"), Key("bar"))
}

func testStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	asked, err := Asked(ctx, s, Key("foo"))
	require.NoError(t, err)
	assert.False(t, asked)

	_, err = s.Get(ctx, Key("foo"))
	assert.ErrorIs(t, err, ErrNotFound)

	askedAt := time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	require.NoError(t, s.Set(ctx, Key("foo"), Record{RequestName: "foo", AskedAt: askedAt}))

	record, err := s.Get(ctx, Key("foo"))
	require.NoError(t, err)
	assert.Equal(t, "foo", record.RequestName)
	assert.True(t, askedAt.Equal(record.AskedAt))

	asked, err = Asked(ctx, s, Key("foo"))
	require.NoError(t, err)
	assert.True(t, asked)

	asked, err = Asked(ctx, s, Key("bar"))
	require.NoError(t, err)
	assert.False(t, asked)

	// request names are free-form
	require.NoError(t, s.Set(ctx, Key("a/b c"), Record{RequestName: "a/b c"}))
	asked, err = Asked(ctx, s, Key("a/b c"))
	require.NoError(t, err)
	assert.True(t, asked)

	require.NoError(t, s.Delete(ctx, Key("foo")))
	require.NoError(t, s.Delete(ctx, Key("never-set")))
	asked, err = Asked(ctx, s, Key("foo"))
	require.NoError(t, err)
	assert.False(t, asked)
}

func TestMemoryStore(t *testing.T) {
	testStore(t, NewMemoryStore())
}

func TestDiskStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "consent")
	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	testStore(t, s)
}

func TestDiskStorePersists(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewDiskStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, Key(""), Record{AskedAt: time.Now()}))

	reopened, err := NewDiskStore(dir)
	require.NoError(t, err)
	asked, err := Asked(ctx, reopened, Key(""))
	require.NoError(t, err)
	assert.True(t, asked)
}

func TestDiskStoreCorruptRecordStillCounts(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := NewDiskStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, Key("foo"), Record{}))
	require.NoError(t, os.WriteFile(filepath.Join(dir, KeyPrefix+".foo"), []byte("{not json"), 0o644))

	reopened, err := NewDiskStore(dir)
	require.NoError(t, err)
	asked, err := Asked(ctx, reopened, Key("foo"))
	require.NoError(t, err)
	assert.True(t, asked)
}

func newMiniredis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisStore(t *testing.T) {
	_, client := newMiniredis(t)
	testStore(t, NewRedisStore(client, "exception_reporting"))
}

func TestRedisStoreLayout(t *testing.T) {
	mr, client := newMiniredis(t)
	s := NewRedisStore(client, "exception_reporting")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, Key("foo"), Record{RequestName: "foo"}))
	assert.Equal(t, []string{"exception_reporting:" + Key("foo")}, mr.Keys())

	raw, err := mr.Get("exception_reporting:" + Key("foo"))
	require.NoError(t, err)
	var record Record
	require.NoError(t, msgpack.Unmarshal([]byte(raw), &record))
	assert.Equal(t, "foo", record.RequestName)

	// undecodable values still count as asked
	require.NoError(t, mr.Set("exception_reporting:"+Key("bar"), "garbage"))
	asked, err := Asked(ctx, s, Key("bar"))
	require.NoError(t, err)
	assert.True(t, asked)
}

func TestRedisStoreUnavailable(t *testing.T) {
	mr, client := newMiniredis(t)
	mr.Close()

	_, err := NewRedisStore(client, "exception_reporting").Get(context.Background(), Key("foo"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
