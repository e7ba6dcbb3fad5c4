package statestore

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ailearn/internal/progress"
)

// Integration tests run only when a server address is exported, e.g.
//
//	AILEARN_TEST_REDIS_ADDR=localhost:6379 go test ./internal/statestore
//	AILEARN_TEST_POSTGRES_DSN=postgres://localhost/ailearn_test go test ./internal/statestore

func exerciseBackend(t *testing.T, b progress.Backend, del func() error) {
	t.Helper()
	ctx := t.Context()

	require.NoError(t, del())
	_, err := b.Load(ctx)
	require.True(t, errors.Is(err, progress.ErrNoState), "empty load error = %v", err)

	svc, err := progress.Open(ctx, b, progress.Options{})
	require.NoError(t, err)
	require.NoError(t, svc.CompleteLesson(ctx, "linux-intro-1"))
	require.NoError(t, svc.UpdateMastery(ctx, "linux-intro-1", 64))

	raw, err := b.Load(ctx)
	require.NoError(t, err)
	assert.True(t, json.Valid(raw))

	reopened, err := progress.Open(ctx, b, progress.Options{})
	require.NoError(t, err)
	st := reopened.Snapshot()
	assert.True(t, st.HasCompleted("linux-intro-1"))
	assert.Equal(t, 64, st.Mastery("linux-intro-1"))
	assert.Equal(t, progress.LessonPoints, st.TotalPoints)

	require.NoError(t, del())
}

func TestRedisBackend(t *testing.T) {
	addr := os.Getenv("AILEARN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("AILEARN_TEST_REDIS_ADDR not set")
	}
	cfg := DefaultRedisConfig()
	cfg.Addr = addr
	cfg.Key = "ailearn-test-" + t.Name()

	r, err := OpenRedis(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { r.Close() })

	exerciseBackend(t, r, func() error { return r.Delete(t.Context()) })
}

func TestPostgresBackend(t *testing.T) {
	dsn := os.Getenv("AILEARN_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("AILEARN_TEST_POSTGRES_DSN not set")
	}
	cfg := DefaultPostgresConfig()
	cfg.DSN = dsn
	cfg.Key = "ailearn-test-" + t.Name()

	p, err := OpenPostgres(t.Context(), cfg)
	require.NoError(t, err)
	t.Cleanup(p.Close)

	exerciseBackend(t, p, func() error { return p.Delete(t.Context()) })
}

func TestNewRedisDefaultsKey(t *testing.T) {
	r := NewRedis(nil, "")
	assert.Equal(t, DefaultKey, r.key)
}

func TestOpenPostgresRejectsBadDSN(t *testing.T) {
	cfg := DefaultPostgresConfig()
	cfg.DSN = "postgres://%zz"
	_, err := OpenPostgres(t.Context(), cfg)
	assert.Error(t, err)
}

func TestDefaultConfigs(t *testing.T) {
	assert.Equal(t, "localhost:6379", DefaultRedisConfig().Addr)
	assert.Equal(t, DefaultKey, DefaultPostgresConfig().Key)
}
