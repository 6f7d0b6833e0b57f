package cache

import "gopkg.in/redis.v5"

// RedisRequestCacher stores each key as a Redis list with the newest entry
// at the head. Only indexes 0..MaxNumber-1 are ever kept or read.
type RedisRequestCacher struct {
	MaxNumber   int
	RedisClient *redis.Client
}

func CreateRedisCache(maxNumber int, client *redis.Client) *RedisRequestCacher {
	return &RedisRequestCacher{maxNumber, client}
}

// Write pushes and trims in one MULTI/EXEC so concurrent writers never
// observe a list longer than the window
func (cacher *RedisRequestCacher) Write(key string, value []byte) error {
	_, err := cacher.RedisClient.TxPipelined(func(pipe *redis.Pipeline) error {
		pipe.LPush(key, value)
		pipe.LTrim(key, 0, cacher.lastIndex())
		return nil
	})

	return err
}

func (cacher *RedisRequestCacher) Read(key string) ([]string, error) {
	return cacher.RedisClient.LRange(key, 0, cacher.lastIndex()).Result()
}

func (cacher *RedisRequestCacher) lastIndex() int64 {
	return int64(cacher.MaxNumber - 1)
}
