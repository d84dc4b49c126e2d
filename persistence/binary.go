package persistence

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/predgo/internal/conv"
)

// Writer streams fixed-width little-endian values into an io.Writer.
type Writer struct {
	w   io.Writer
	buf [8]byte
}

// NewWriter creates a Writer over w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// WriteUint32 writes one little-endian uint32.
func (w *Writer) WriteUint32(v uint32) error {
	binary.LittleEndian.PutUint32(w.buf[:4], v)
	_, err := w.w.Write(w.buf[:4])
	return err
}

// WriteUint64 writes one little-endian uint64.
func (w *Writer) WriteUint64(v uint64) error {
	binary.LittleEndian.PutUint64(w.buf[:8], v)
	_, err := w.w.Write(w.buf[:8])
	return err
}

// WriteUint64Slice writes a uint32 length prefix followed by the elements.
func (w *Writer) WriteUint64Slice(vs []uint64) error {
	n, err := conv.IntToUint32(len(vs))
	if err != nil {
		return err
	}
	if err := w.WriteUint32(n); err != nil {
		return err
	}
	for _, v := range vs {
		if err := w.WriteUint64(v); err != nil {
			return err
		}
	}
	return nil
}

// Reader streams fixed-width little-endian values out of an io.Reader.
type Reader struct {
	r   io.Reader
	buf [8]byte
}

// NewReader creates a Reader over r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r}
}

// ReadUint32 reads one little-endian uint32.
func (r *Reader) ReadUint32() (uint32, error) {
	if _, err := io.ReadFull(r.r, r.buf[:4]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(r.buf[:4]), nil
}

// ReadUint64 reads one little-endian uint64.
func (r *Reader) ReadUint64() (uint64, error) {
	if _, err := io.ReadFull(r.r, r.buf[:8]); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(r.buf[:8]), nil
}

// ReadUint64Slice reads a slice written by WriteUint64Slice. maxLen bounds
// the allocation so a corrupt length prefix cannot exhaust memory.
func (r *Reader) ReadUint64Slice(maxLen int) ([]uint64, error) {
	n32, err := r.ReadUint32()
	if err != nil {
		return nil, err
	}
	n, err := conv.Uint32ToInt(n32)
	if err != nil {
		return nil, err
	}
	if n > maxLen {
		return nil, fmt.Errorf("slice length %d exceeds limit %d", n, maxLen)
	}

	vs := make([]uint64, n)
	for i := range vs {
		vs[i], err = r.ReadUint64()
		if err != nil {
			return nil, err
		}
	}
	return vs, nil
}
