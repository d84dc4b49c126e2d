package codec

import "github.com/pierrec/lz4/v4"

// LZ4 is the LZ4 block codec: fast with a moderate ratio, the right choice
// for snapshots on a hot save/load path.
type LZ4 struct{}

// Name returns "lz4".
func (LZ4) Name() string { return "lz4" }

// Compress frames data as an LZ4 block.
func (LZ4) Compress(data []byte) ([]byte, error) {
	return compressFramed(data, func(data []byte) ([]byte, error) {
		dst := make([]byte, lz4.CompressBlockBound(len(data)))
		n, err := lz4.CompressBlock(data, dst, nil)
		if err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, nil // incompressible
		}
		return dst[:n], nil
	})
}

// Decompress reverses Compress.
func (LZ4) Decompress(data []byte) ([]byte, error) {
	rawSize, body, raw, err := openFrame(data)
	if err != nil {
		return nil, err
	}
	if raw {
		return body, nil
	}

	out := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(body, out)
	if err != nil {
		return nil, err
	}
	if n != rawSize {
		return nil, errSizeMismatch
	}
	return out, nil
}
