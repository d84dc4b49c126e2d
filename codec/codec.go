// Package codec provides the named compression codecs used for snapshot
// payloads.
//
// Codec selection is a compatibility boundary: the codec name travels in
// the snapshot header, so snapshots stay self-describing and a reader picks
// the matching codec with ByName.
package codec

import (
	"encoding/binary"
	"errors"
)

// Codec compresses and decompresses snapshot payloads.
// Implementations must be safe for concurrent use.
type Codec interface {
	// Compress returns a self-framing compressed form of data.
	Compress(data []byte) ([]byte, error)

	// Decompress reverses Compress.
	Decompress(data []byte) ([]byte, error)

	// Name returns the stable codec name stored in snapshot headers.
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Zstd{}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "none":
		return None{}, true
	case "lz4":
		return LZ4{}, true
	case "zstd":
		return Zstd{}, true
	default:
		return nil, false
	}
}

// None is the identity codec.
type None struct{}

// Name returns "none".
func (None) Name() string { return "none" }

// Compress returns data unchanged.
func (None) Compress(data []byte) ([]byte, error) { return data, nil }

// Decompress returns data unchanged.
func (None) Decompress(data []byte) ([]byte, error) { return data, nil }

// Compressed payloads carry an 8-byte frame header:
// [rawSize uint32][compressedSize uint32]. compressedSize == 0 marks a
// payload stored raw because compression did not help.
const frameHeaderSize = 8

var (
	errFrameTooSmall  = errors.New("codec: payload too small for frame header")
	errFrameTruncated = errors.New("codec: payload shorter than frame header claims")
	errSizeMismatch   = errors.New("codec: decompressed size mismatch")
	errPayloadTooBig  = errors.New("codec: payload exceeds 4 GiB frame limit")
)

// frame prepends the header to body. compressedSize 0 means body is raw.
func frame(rawSize, compressedSize int, body []byte) []byte {
	out := make([]byte, frameHeaderSize+len(body))
	binary.LittleEndian.PutUint32(out[0:], uint32(rawSize))
	binary.LittleEndian.PutUint32(out[4:], uint32(compressedSize))
	copy(out[frameHeaderSize:], body)
	return out
}

// compressFramed applies compress to data and frames the result, falling
// back to a raw frame when the output is empty (incompressible) or barely
// smaller than the input.
func compressFramed(data []byte, compress func([]byte) ([]byte, error)) ([]byte, error) {
	if len(data) > 0xFFFFFFFF {
		return nil, errPayloadTooBig
	}

	compressed, err := compress(data)
	if err != nil {
		return nil, err
	}
	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		return frame(len(data), 0, data), nil
	}
	return frame(len(data), len(compressed), compressed), nil
}

// openFrame validates the header and returns (rawSize, body, stored-raw).
func openFrame(data []byte) (int, []byte, bool, error) {
	if len(data) < frameHeaderSize {
		return 0, nil, false, errFrameTooSmall
	}

	rawSize := int(binary.LittleEndian.Uint32(data[0:]))
	compressedSize := int(binary.LittleEndian.Uint32(data[4:]))

	if compressedSize == 0 {
		if len(data) < frameHeaderSize+rawSize {
			return 0, nil, false, errFrameTruncated
		}
		return rawSize, data[frameHeaderSize : frameHeaderSize+rawSize], true, nil
	}

	if len(data) < frameHeaderSize+compressedSize {
		return 0, nil, false, errFrameTruncated
	}
	return rawSize, data[frameHeaderSize : frameHeaderSize+compressedSize], false, nil
}
