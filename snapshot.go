package predgo

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hupe1980/predgo/blobstore"
	"github.com/hupe1980/predgo/codec"
	"github.com/hupe1980/predgo/internal/conv"
	"github.com/hupe1980/predgo/internal/hash"
	"github.com/hupe1980/predgo/persistence"
)

// WriteTo serializes the index to w: a 64-byte header followed by the
// compressed key payload. Only the keys are stored; the trie is rebuilt
// on load. Implements io.WriterTo.
func (idx *Index) WriteTo(w io.Writer) (int64, error) {
	var raw bytes.Buffer

	pw := persistence.NewWriter(&raw)
	if err := pw.WriteUint64Slice(idx.trie.Keys()); err != nil {
		return 0, fmt.Errorf("encode keys: %w", err)
	}

	payload, err := idx.opts.Codec.Compress(raw.Bytes())
	if err != nil {
		return 0, fmt.Errorf("compress payload: %w", err)
	}

	keyCount, err := conv.IntToUint64(idx.trie.Len())
	if err != nil {
		return 0, err
	}
	payloadSize, err := conv.IntToUint64(len(payload))
	if err != nil {
		return 0, err
	}
	rawSize, err := conv.IntToUint64(raw.Len())
	if err != nil {
		return 0, err
	}
	depth, err := conv.IntToUint32(idx.trie.Depth())
	if err != nil {
		return 0, err
	}

	header := persistence.FileHeader{
		Magic:       persistence.MagicNumber,
		Version:     persistence.Version,
		KeyCount:    keyCount,
		Depth:       depth,
		PayloadSize: payloadSize,
		RawSize:     rawSize,
		Checksum:    hash.CRC32C(payload),
	}
	if err := header.SetCodec(idx.opts.Codec.Name()); err != nil {
		return 0, err
	}

	encoded := header.Encode()

	n1, err := w.Write(encoded[:])
	if err != nil {
		return int64(n1), fmt.Errorf("write header: %w", err)
	}

	n2, err := w.Write(payload)
	if err != nil {
		return int64(n1 + n2), fmt.Errorf("write payload: %w", err)
	}

	return int64(n1 + n2), nil
}

// ReadFrom reads a snapshot written by WriteTo and rebuilds the index.
// The codec is taken from the snapshot header; optFns configure the new
// index the same way they do in New.
func ReadFrom(r io.Reader, optFns ...func(o *Options)) (*Index, error) {
	headerBuf := make([]byte, persistence.HeaderSize)
	if _, err := io.ReadFull(r, headerBuf); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	header, err := persistence.DecodeHeader(headerBuf)
	if err != nil {
		return nil, err
	}

	c, ok := codec.ByName(header.Codec())
	if !ok {
		return nil, fmt.Errorf("unknown snapshot codec %q", header.Codec())
	}

	payloadSize, err := conv.Uint64ToInt(header.PayloadSize)
	if err != nil {
		return nil, err
	}

	payload := make([]byte, payloadSize)
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	if hash.CRC32C(payload) != header.Checksum {
		return nil, persistence.ErrChecksumMismatch
	}

	raw, err := c.Decompress(payload)
	if err != nil {
		return nil, fmt.Errorf("decompress payload: %w", err)
	}
	if uint64(len(raw)) != header.RawSize {
		return nil, fmt.Errorf("payload size mismatch: got %d, header says %d", len(raw), header.RawSize)
	}

	keyCount, err := conv.Uint64ToInt(header.KeyCount)
	if err != nil {
		return nil, err
	}

	keys, err := persistence.NewReader(bytes.NewReader(raw)).ReadUint64Slice(keyCount)
	if err != nil {
		return nil, fmt.Errorf("decode keys: %w", err)
	}
	if len(keys) != keyCount {
		return nil, fmt.Errorf("key count mismatch: got %d, header says %d", len(keys), keyCount)
	}

	idx, err := New(keys, optFns...)
	if err != nil {
		return nil, err
	}

	// The header is not covered by the payload checksum, so cross-check
	// its depth against the rebuilt trie.
	headerDepth, err := conv.Uint32ToInt(header.Depth)
	if err != nil {
		return nil, err
	}
	if idx.Depth() != headerDepth {
		return nil, fmt.Errorf("depth mismatch: rebuilt %d, header says %d", idx.Depth(), headerDepth)
	}

	return idx, nil
}

// SaveToFile writes a snapshot atomically via a temp file and rename.
func (idx *Index) SaveToFile(filename string) error {
	start := time.Now()

	var written int64
	err := persistence.SaveToFile(filename, func(w *os.File) error {
		n, werr := idx.WriteTo(w)
		written = n
		return werr
	})

	idx.opts.Logger.LogSnapshot(context.Background(), "save", filename, err)
	idx.opts.MetricsCollector.RecordSnapshot("save", written, time.Since(start), err)

	return err
}

// LoadFromFile reads a snapshot file and rebuilds the index.
func LoadFromFile(filename string, optFns ...func(o *Options)) (*Index, error) {
	var idx *Index

	err := persistence.LoadFromFile(filename, func(r *os.File) error {
		var rerr error
		idx, rerr = ReadFrom(r, optFns...)
		return rerr
	})
	if err != nil {
		return nil, err
	}

	return idx, nil
}

// SaveToStore writes a snapshot blob to store under name.
func (idx *Index) SaveToStore(ctx context.Context, store blobstore.BlobStore, name string) error {
	start := time.Now()

	written, err := idx.saveToStore(ctx, store, name)

	idx.opts.Logger.LogSnapshot(ctx, "save", name, err)
	idx.opts.MetricsCollector.RecordSnapshot("save", written, time.Since(start), err)

	return err
}

func (idx *Index) saveToStore(ctx context.Context, store blobstore.BlobStore, name string) (int64, error) {
	blob, err := store.Create(ctx, name)
	if err != nil {
		return 0, err
	}

	written, err := idx.WriteTo(blob)
	if err != nil {
		_ = blob.Abort()
		return written, err
	}

	return written, blob.Close()
}

// LoadFromStore reads a snapshot blob from store and rebuilds the index.
func LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string, optFns ...func(o *Options)) (*Index, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}

	return ReadFrom(bytes.NewReader(data), optFns...)
}
