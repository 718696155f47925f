package cachestore

import (
	"context"
	"net/http"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/ksdhruvateja/grocera-sub002/core/ports"
	"github.com/ksdhruvateja/grocera-sub002/core/usecases/offline_worker"
)

var _ ports.CacheStorage = (*LRUStorage)(nil)

func TestLRUStorage_OpenKeysDelete(t *testing.T) {
	s, err := NewLRUStorage(0, 0)
	require.NoError(t, err)

	first, err := s.Open("static-v1")
	require.NoError(t, err)
	first.Put("/index.html", []byte("<html>"))

	_, err = s.Open("runtime-v1")
	require.NoError(t, err)

	again, err := s.Open("static-v1")
	require.NoError(t, err)
	body, ok := again.Match("/index.html")
	require.True(t, ok)
	require.Equal(t, "<html>", string(body))

	require.Equal(t, []string{"static-v1", "runtime-v1"}, s.Keys())

	require.True(t, s.Delete("static-v1"))
	require.False(t, s.Delete("static-v1"))
	require.Equal(t, []string{"runtime-v1"}, s.Keys())
}

func TestLRUCache_Evicts(t *testing.T) {
	s, err := NewLRUStorage(1, 2)
	require.NoError(t, err)

	c, err := s.Open("assets")
	require.NoError(t, err)
	c.Put("a", []byte("1"))
	c.Put("b", []byte("2"))
	_, _ = c.Match("a")
	c.Put("c", []byte("3"))

	require.Equal(t, 2, c.Len())
	_, ok := c.Match("b")
	require.False(t, ok)
	_, ok = c.Match("a")
	require.True(t, ok)

	// Storage itself is bounded too: opening a second cache drops the first.
	_, err = s.Open("other")
	require.NoError(t, err)
	require.Equal(t, []string{"other"}, s.Keys())
}

func TestLRUStorage_ClearedByWorkerActivation(t *testing.T) {
	s, err := NewLRUStorage(0, 0)
	require.NoError(t, err)
	for _, name := range []string{"grocera-static-v1", "grocera-runtime-v1"} {
		c, err := s.Open(name)
		require.NoError(t, err)
		c.Put("/", []byte("<html>"))
	}
	logger, _ := test.NewNullLogger()
	worker := offline_worker.NewOfflineWorkerUsecase(s, http.DefaultClient, nil, logger)

	worker.Install()
	require.NoError(t, worker.Activate(context.Background()))

	require.Empty(t, s.Keys())
}
