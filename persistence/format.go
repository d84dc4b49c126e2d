package persistence

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// MagicNumber identifies predgo snapshot files (ASCII: "PRD0").
	MagicNumber = 0x50524430
	// Version is the current file format version (v1.0.0).
	Version = 0x00010000

	// HeaderSize is the fixed size of the file header in bytes.
	HeaderSize = 64

	codecNameSize = 8
)

var (
	ErrInvalidMagic     = errors.New("invalid magic number")
	ErrInvalidVersion   = errors.New("unsupported version")
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)

// FileHeader is the 64-byte header at the start of every snapshot.
type FileHeader struct {
	Magic       uint32
	Version     uint32
	CodecName   [codecNameSize]byte // NUL-padded codec name
	KeyCount    uint64
	Depth       uint32 // trie depth of the snapshotted index, for sanity checks
	PayloadSize uint64 // compressed payload bytes following the header
	RawSize     uint64 // payload bytes after decompression
	Checksum    uint32 // CRC32C of the compressed payload
}

// Codec returns the codec name with NUL padding stripped.
func (h *FileHeader) Codec() string {
	name := h.CodecName[:]
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}
	return string(name)
}

// SetCodec stores name into the fixed-width codec field.
func (h *FileHeader) SetCodec(name string) error {
	if len(name) > codecNameSize {
		return fmt.Errorf("codec name %q longer than %d bytes", name, codecNameSize)
	}
	h.CodecName = [codecNameSize]byte{}
	copy(h.CodecName[:], name)
	return nil
}

// Encode serializes the header into its fixed 64-byte layout.
func (h *FileHeader) Encode() [HeaderSize]byte {
	var buf [HeaderSize]byte
	binary.LittleEndian.PutUint32(buf[0:], h.Magic)
	binary.LittleEndian.PutUint32(buf[4:], h.Version)
	copy(buf[8:16], h.CodecName[:])
	binary.LittleEndian.PutUint64(buf[16:], h.KeyCount)
	binary.LittleEndian.PutUint32(buf[24:], h.Depth)
	// buf[28:32] reserved
	binary.LittleEndian.PutUint64(buf[32:], h.PayloadSize)
	binary.LittleEndian.PutUint64(buf[40:], h.RawSize)
	binary.LittleEndian.PutUint32(buf[48:], h.Checksum)
	// buf[52:64] reserved
	return buf
}

// DecodeHeader parses and validates a header. Magic and version mismatches
// are reported as ErrInvalidMagic / ErrInvalidVersion.
func DecodeHeader(buf []byte) (FileHeader, error) {
	var h FileHeader
	if len(buf) < HeaderSize {
		return h, fmt.Errorf("header truncated: %d bytes", len(buf))
	}

	h.Magic = binary.LittleEndian.Uint32(buf[0:])
	h.Version = binary.LittleEndian.Uint32(buf[4:])
	copy(h.CodecName[:], buf[8:16])
	h.KeyCount = binary.LittleEndian.Uint64(buf[16:])
	h.Depth = binary.LittleEndian.Uint32(buf[24:])
	h.PayloadSize = binary.LittleEndian.Uint64(buf[32:])
	h.RawSize = binary.LittleEndian.Uint64(buf[40:])
	h.Checksum = binary.LittleEndian.Uint32(buf[48:])

	if h.Magic != MagicNumber {
		return h, ErrInvalidMagic
	}
	if h.Version != Version {
		return h, ErrInvalidVersion
	}
	return h, nil
}
