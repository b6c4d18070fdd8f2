package storage

// Storage is a string key/value mirror kept on the client, the way a
// browser keeps local storage.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Remove(key string) error
}
