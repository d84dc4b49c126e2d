package blobstore

import (
	"bytes"
	"context"
	"io"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps blobs in a map. It backs tests and short-lived tooling
// where snapshots never need to leave the process.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory blob store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func clone(data []byte) []byte {
	return append([]byte(nil), data...)
}

// Open opens an existing blob for reading. The returned blob holds its own
// copy, so later Put or Delete calls do not affect open readers.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	data, ok := m.blobs[name]
	m.mu.RUnlock()

	if !ok {
		return nil, ErrNotFound
	}
	return &memoryBlob{data: clone(data)}, nil
}

// Create creates a new blob for streaming writes. The blob appears in the
// store only when Close commits it.
func (m *MemoryStore) Create(_ context.Context, name string) (WritableBlob, error) {
	return &memoryWritableBlob{store: m, name: name}, nil
}

// Put writes a blob atomically.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[name] = clone(data)
	return nil
}

// Delete removes a blob. Missing blobs are ignored.
func (m *MemoryStore) Delete(_ context.Context, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.blobs, name)
	return nil
}

// List returns all blob names with the given prefix, sorted.
func (m *MemoryStore) List(_ context.Context, prefix string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	names := make([]string, 0, len(m.blobs))
	for name := range m.blobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}

	sort.Strings(names)
	return names, nil
}

type memoryBlob struct {
	data []byte
}

func (b *memoryBlob) Size() int64 {
	return int64(len(b.data))
}

func (b *memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	if off >= b.Size() {
		return 0, io.EOF
	}

	n := copy(p, b.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (b *memoryBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	if off >= b.Size() {
		return io.NopCloser(bytes.NewReader(nil)), nil
	}

	if end := off + length; end < b.Size() {
		return io.NopCloser(bytes.NewReader(b.data[off:end])), nil
	}
	return io.NopCloser(bytes.NewReader(b.data[off:])), nil
}

func (b *memoryBlob) Close() error {
	return nil
}

type memoryWritableBlob struct {
	store *MemoryStore
	name  string
	buf   bytes.Buffer
	done  bool
}

func (b *memoryWritableBlob) Write(p []byte) (int, error) {
	return b.buf.Write(p)
}

// Close commits the buffered bytes under the blob's name.
func (b *memoryWritableBlob) Close() error {
	if b.done {
		return nil
	}
	b.done = true

	return b.store.Put(context.Background(), b.name, b.buf.Bytes())
}

// Abort drops the buffered bytes without committing.
func (b *memoryWritableBlob) Abort() error {
	b.done = true
	b.buf.Reset()
	return nil
}
