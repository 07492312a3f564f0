package serialization

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/evalnet-ml/evalnet/internal/vec"
)

const (
	magic   = "EVNP"
	version = 1

	// maxElems bounds the element count a header may declare for any one
	// block, so a corrupt or hostile stream cannot force a giant
	// allocation before the checksum is ever verified.
	maxElems = 64 << 20 // 256MB of float32
)

var (
	// ErrBadMagic reports a stream that does not start with the format magic.
	ErrBadMagic = errors.New("serialization: bad magic")

	// ErrUnsupportedVersion reports a version this package cannot read.
	ErrUnsupportedVersion = errors.New("serialization: unsupported version")

	// ErrChecksumMismatch reports a stream whose stored checksum does not
	// match its contents.
	ErrChecksumMismatch = errors.New("serialization: checksum mismatch")

	// ErrInvalidShape reports a header whose declared shape is zero,
	// negative after conversion, or larger than maxElems per block.
	ErrInvalidShape = errors.New("serialization: invalid shape")
)

// Write serializes one weight matrix and bias vector to w.
func Write(w io.Writer, weights *vec.Matrix, bias vec.Vector) error {
	if _, err := io.WriteString(w, magic); err != nil {
		return fmt.Errorf("serialization: write magic: %w", err)
	}

	h := sha256.New()
	mw := io.MultiWriter(w, h)

	header := [4]uint32{version, uint32(weights.Rows()), uint32(weights.Cols()), uint32(len(bias))}
	if err := binary.Write(mw, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("serialization: write header: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, []float32(weights.Data())); err != nil {
		return fmt.Errorf("serialization: write weights: %w", err)
	}
	if err := binary.Write(mw, binary.LittleEndian, []float32(bias)); err != nil {
		return fmt.Errorf("serialization: write bias: %w", err)
	}

	if _, err := w.Write(h.Sum(nil)); err != nil {
		return fmt.Errorf("serialization: write checksum: %w", err)
	}
	return nil
}

// Read deserializes one weight matrix and bias vector from r, verifying
// the trailing checksum. The returned matrix and vector are freshly
// allocated and safe to hand to the FromRaw constructors.
func Read(r io.Reader) (*vec.Matrix, vec.Vector, error) {
	var m [len(magic)]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return nil, nil, fmt.Errorf("serialization: read magic: %w", err)
	}
	if string(m[:]) != magic {
		return nil, nil, ErrBadMagic
	}

	h := sha256.New()
	tr := io.TeeReader(r, h)

	var header [4]uint32
	if err := binary.Read(tr, binary.LittleEndian, &header); err != nil {
		return nil, nil, fmt.Errorf("serialization: read header: %w", err)
	}
	if header[0] != version {
		return nil, nil, ErrUnsupportedVersion
	}
	// Validate the untrusted shape before any allocation. The division
	// form of the weight-count bound avoids overflowing rows*cols.
	rows, cols, biasLen := int(header[1]), int(header[2]), int(header[3])
	if rows <= 0 || cols <= 0 || biasLen <= 0 ||
		rows > maxElems || biasLen > maxElems || cols > maxElems/rows {
		return nil, nil, fmt.Errorf("%w: %dx%d with %d bias values", ErrInvalidShape, rows, cols, biasLen)
	}

	weights := vec.Zeroed(rows * cols)
	if err := binary.Read(tr, binary.LittleEndian, []float32(weights)); err != nil {
		return nil, nil, fmt.Errorf("serialization: read weights: %w", err)
	}
	bias := vec.Zeroed(biasLen)
	if err := binary.Read(tr, binary.LittleEndian, []float32(bias)); err != nil {
		return nil, nil, fmt.Errorf("serialization: read bias: %w", err)
	}

	sum := h.Sum(nil)
	var stored [sha256.Size]byte
	if _, err := io.ReadFull(r, stored[:]); err != nil {
		return nil, nil, fmt.Errorf("serialization: read checksum: %w", err)
	}
	if !bytes.Equal(sum, stored[:]) {
		return nil, nil, ErrChecksumMismatch
	}

	return vec.View(rows, cols, weights), bias, nil
}
