package store

import (
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Values below this size are stored raw; zstd's frame overhead makes
// compression a net loss on small trie buffers (a freshly-optimised
// single-hostname buffer is a few hundred bytes).
const compressMinSize = 512

// tagRaw and tagZstd prefix every stored value by one byte so Get can
// tell a compressed blob from a raw one without out-of-band metadata.
const (
	tagRaw  byte = 0
	tagZstd byte = 1
)

var (
	encoderOnce sync.Once
	encoder     *zstd.Encoder
	encoderErr  error

	decoderOnce sync.Once
	decoder     *zstd.Decoder
	decoderErr  error
)

func getEncoder() (*zstd.Encoder, error) {
	encoderOnce.Do(func() {
		encoder, encoderErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	})
	return encoder, encoderErr
}

func getDecoder() (*zstd.Decoder, error) {
	decoderOnce.Do(func() {
		decoder, decoderErr = zstd.NewReader(nil)
	})
	return decoder, decoderErr
}

// compressValue opportunistically compresses value, returning a tagged
// blob. Small values are tagged raw and returned unchanged; values that
// fail to shrink under compression are also kept raw.
func compressValue(value []byte) ([]byte, error) {
	if len(value) < compressMinSize {
		return append([]byte{tagRaw}, value...), nil
	}
	enc, err := getEncoder()
	if err != nil {
		return nil, fmt.Errorf("store: init zstd encoder: %w", err)
	}
	compressed := enc.EncodeAll(value, make([]byte, 0, len(value)))
	if len(compressed) >= len(value) {
		return append([]byte{tagRaw}, value...), nil
	}
	return append([]byte{tagZstd}, compressed...), nil
}

// decompressValue reverses compressValue.
func decompressValue(blob []byte) ([]byte, error) {
	if len(blob) == 0 {
		return nil, fmt.Errorf("store: empty stored value")
	}
	tag, body := blob[0], blob[1:]
	switch tag {
	case tagRaw:
		return append([]byte(nil), body...), nil
	case tagZstd:
		dec, err := getDecoder()
		if err != nil {
			return nil, fmt.Errorf("store: init zstd decoder: %w", err)
		}
		out, err := dec.DecodeAll(body, nil)
		if err != nil {
			return nil, fmt.Errorf("store: decompress value: %w", err)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("store: unknown value tag %d", tag)
	}
}
