package cache

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/redis.v5"
)

func newTestRedisCache(t *testing.T, maxNumber int) *RedisRequestCacher {
	server := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })

	return CreateRedisCache(maxNumber, client)
}

func Test_RequestCachers(t *testing.T) {
	cachers := map[string]func(t *testing.T) RequestCacher{
		"Redis": func(t *testing.T) RequestCacher {
			return newTestRedisCache(t, 3)
		},
		"Memory": func(t *testing.T) RequestCacher {
			return CreateMemoryCache(3)
		},
	}

	for name, create := range cachers {
		t.Run(name, func(t *testing.T) {
			t.Run("Newest first", func(t *testing.T) {
				cacher := create(t)

				require.NoError(t, cacher.Write("alice", []byte("first")))
				require.NoError(t, cacher.Write("alice", []byte("second")))

				entries, err := cacher.Read("alice")
				require.NoError(t, err)
				assert.Equal(t, []string{"second", "first"}, entries)
			})

			t.Run("Capped at max number", func(t *testing.T) {
				cacher := create(t)

				for _, value := range []string{"1", "2", "3", "4", "5"} {
					require.NoError(t, cacher.Write("bob", []byte(value)))
				}

				entries, err := cacher.Read("bob")
				require.NoError(t, err)
				assert.Equal(t, []string{"5", "4", "3"}, entries)
			})

			t.Run("Keys are independent", func(t *testing.T) {
				cacher := create(t)

				require.NoError(t, cacher.Write("alice", []byte("a")))
				require.NoError(t, cacher.Write("bob", []byte("b")))

				entries, err := cacher.Read("alice")
				require.NoError(t, err)
				assert.Equal(t, []string{"a"}, entries)
			})

			t.Run("Unknown key", func(t *testing.T) {
				cacher := create(t)

				entries, err := cacher.Read("nobody")
				require.NoError(t, err)
				assert.Empty(t, entries)
			})
		})
	}
}

func Test_RedisRequestCacher_ServerDown(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr(), MaxRetries: 0})
	t.Cleanup(func() { client.Close() })
	cacher := CreateRedisCache(3, client)

	server.Close()

	assert.Error(t, cacher.Write("alice", []byte("x")))

	_, err := cacher.Read("alice")
	assert.Error(t, err)
}

func Test_RedisRequestCacher_TrimsStoredList(t *testing.T) {
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	cacher := CreateRedisCache(2, client)

	for _, value := range []string{"1", "2", "3"} {
		require.NoError(t, cacher.Write("carol", []byte(value)))
	}

	stored, err := server.List("carol")
	require.NoError(t, err)
	assert.Equal(t, []string{"3", "2"}, stored)
}
