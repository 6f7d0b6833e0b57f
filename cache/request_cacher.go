//go:generate mockgen -source=request_cacher.go -destination=request_cacher_mock.go -package=cache
package cache

// RequestCacher keeps the most recent entries written under a key,
// newest first
type RequestCacher interface {
	Write(key string, value []byte) error
	Read(key string) ([]string, error)
}
