package persistence

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeader(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		h := FileHeader{
			Magic:       MagicNumber,
			Version:     Version,
			KeyCount:    7,
			Depth:       5,
			PayloadSize: 123,
			RawSize:     456,
			Checksum:    0xDEADBEEF,
		}
		require.NoError(t, h.SetCodec("zstd"))

		buf := h.Encode()
		got, err := DecodeHeader(buf[:])
		require.NoError(t, err)

		assert.Equal(t, h, got)
		assert.Equal(t, "zstd", got.Codec())
	})

	t.Run("BadMagic", func(t *testing.T) {
		h := FileHeader{Magic: 0x12345678, Version: Version}
		buf := h.Encode()

		_, err := DecodeHeader(buf[:])
		assert.ErrorIs(t, err, ErrInvalidMagic)
	})

	t.Run("BadVersion", func(t *testing.T) {
		h := FileHeader{Magic: MagicNumber, Version: 0x00990000}
		buf := h.Encode()

		_, err := DecodeHeader(buf[:])
		assert.ErrorIs(t, err, ErrInvalidVersion)
	})

	t.Run("Truncated", func(t *testing.T) {
		_, err := DecodeHeader(make([]byte, 10))
		assert.Error(t, err)
	})

	t.Run("CodecNameTooLong", func(t *testing.T) {
		var h FileHeader
		assert.Error(t, h.SetCodec("anamethatiswaytoolong"))
	})
}

func TestWriterReader(t *testing.T) {
	var buf bytes.Buffer

	w := NewWriter(&buf)
	require.NoError(t, w.WriteUint32(42))
	require.NoError(t, w.WriteUint64(1<<40))
	require.NoError(t, w.WriteUint64Slice([]uint64{3, 5, 9, 12, 20, 33, 40}))
	require.NoError(t, w.WriteUint64Slice(nil))

	r := NewReader(&buf)

	v32, err := r.ReadUint32()
	require.NoError(t, err)
	assert.Equal(t, uint32(42), v32)

	v64, err := r.ReadUint64()
	require.NoError(t, err)
	assert.Equal(t, uint64(1<<40), v64)

	vs, err := r.ReadUint64Slice(100)
	require.NoError(t, err)
	assert.Equal(t, []uint64{3, 5, 9, 12, 20, 33, 40}, vs)

	empty, err := r.ReadUint64Slice(100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestReadUint64Slice_LengthLimit(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteUint64Slice([]uint64{1, 2, 3}))

	_, err := NewReader(&buf).ReadUint64Slice(2)
	assert.Error(t, err)
}

func TestSaveLoadFile(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "index.prd")

	require.NoError(t, SaveToFile(name, func(w *os.File) error {
		_, err := w.Write([]byte("payload"))
		return err
	}))

	var got []byte
	require.NoError(t, LoadFromFile(name, func(r *os.File) error {
		b, err := io.ReadAll(r)
		got = b
		return err
	}))
	assert.Equal(t, []byte("payload"), got)

	// No temp litter after a successful save.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestSaveToFile_WriteErrorCleansUp(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "index.prd")

	err := SaveToFile(name, func(w *os.File) error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, statErr := os.Stat(name)
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
