package localstore

import (
	"errors"
	"sync"
)

// memoryKV is an in-memory KV used to exercise the stores without sqlite.
type memoryKV struct {
	mu   sync.Mutex
	data map[string]string
	// fail makes every call return an error, simulating a storage fault.
	fail bool
}

func newMemoryKV() *memoryKV {
	return &memoryKV{data: map[string]string{}}
}

var errStorageFault = errors.New("storage fault")

func blobKey(namespace, key string) string {
	return namespace + "/" + key
}

func (m *memoryKV) Get(namespace, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return "", false, errStorageFault
	}
	value, ok := m.data[blobKey(namespace, key)]
	return value, ok, nil
}

func (m *memoryKV) Set(namespace, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStorageFault
	}
	m.data[blobKey(namespace, key)] = value
	return nil
}

func (m *memoryKV) Delete(namespace, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStorageFault
	}
	delete(m.data, blobKey(namespace, key))
	return nil
}

func (m *memoryKV) Clear(namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errStorageFault
	}
	for k := range m.data {
		if len(k) > len(namespace) && k[:len(namespace)+1] == namespace+"/" {
			delete(m.data, k)
		}
	}
	return nil
}
