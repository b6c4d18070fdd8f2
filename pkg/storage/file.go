package storage

import (
	"os"
	"strings"
	"sync"

	"github.com/krainet/userctl/pkg/libol"
)

const DefaultFile = "~/.userctl/storage.json"

// File keeps every key in one JSON object and rewrites it on each change.
type File struct {
	path string
	lock sync.RWMutex
	data map[string]string
}

func NewFile(path string) (*File, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, libol.NewErr("storage file path is required")
	}
	f := &File{
		path: libol.HomeFile(path),
		data: make(map[string]string, 8),
	}
	if err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) Path() string {
	return f.path
}

func (f *File) load() error {
	if err := libol.FileExist(f.path); err != nil {
		return nil
	}
	if err := libol.UnmarshalLoad(&f.data, f.path); err != nil {
		return err
	}
	if f.data == nil {
		f.data = make(map[string]string, 8)
	}
	return nil
}

func (f *File) Get(key string) (string, bool) {
	f.lock.RLock()
	defer f.lock.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.data[key] = value
	return f.saveLocked()
}

func (f *File) Remove(key string) error {
	f.lock.Lock()
	defer f.lock.Unlock()
	if _, ok := f.data[key]; !ok {
		return nil
	}
	delete(f.data, key)
	return f.saveLocked()
}

func (f *File) saveLocked() error {
	if len(f.data) == 0 {
		if err := os.Remove(f.path); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
	if err := libol.MarshalSave(f.data, f.path, true); err != nil {
		return libol.NewErr("write storage file %s: %s", f.path, err)
	}
	return nil
}
