package storage

import "github.com/krainet/userctl/pkg/libol"

type Memory struct {
	data *libol.SafeStrMap
}

func NewMemory() *Memory {
	return &Memory{data: libol.NewSafeStrMap(0)}
}

func (m *Memory) Get(key string) (string, bool) {
	if v, ok := m.data.GetEx(key); ok {
		return v.(string), true
	}
	return "", false
}

func (m *Memory) Set(key, value string) error {
	return m.data.Set(key, value)
}

func (m *Memory) Remove(key string) error {
	m.data.Del(key)
	return nil
}
