// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package checksum computes 64-bit content fingerprints.
//
// Fingerprints use XXH64 with seed 0 ([github.com/cespare/xxhash/v2]).
// They are for change detection and keys, not for security.
//
// One-shot:
//
//	sum := checksum.Sum64(data)
//
// Incremental:
//
//	d := checksum.New()
//	io.Copy(d, f)
//	sum := d.Sum64()
package checksum

import (
	"encoding/binary"
	"io"

	"github.com/cespare/xxhash/v2"
)

// Size is the size of a fingerprint in bytes.
const Size = 8

// Digest is an incremental fingerprint. It implements hash.Hash64.
type Digest struct {
	*xxhash.Digest
	n int64
}

// New creates a Digest over no data.
func New() *Digest {
	return &Digest{Digest: xxhash.New()}
}

// Write adds b to the digest. It never returns an error.
func (d *Digest) Write(b []byte) (int, error) {
	n, err := d.Digest.Write(b)
	d.n += int64(n)
	return n, err
}

// WriteString adds s to the digest without copying it.
func (d *Digest) WriteString(s string) (int, error) {
	n, err := d.Digest.WriteString(s)
	d.n += int64(n)
	return n, err
}

// Reset clears the digest.
func (d *Digest) Reset() {
	d.Digest.Reset()
	d.n = 0
}

// Len returns the number of bytes written since creation or Reset.
func (d *Digest) Len() int64 {
	return d.n
}

// Sum64 returns the fingerprint of b.
func Sum64(b []byte) uint64 {
	return xxhash.Sum64(b)
}

// SumString returns the fingerprint of s.
func SumString(s string) uint64 {
	return xxhash.Sum64String(s)
}

// SumReader returns the fingerprint of everything read from r, and the
// number of bytes read.
func SumReader(r io.Reader) (uint64, int64, error) {
	d := New()
	n, err := io.Copy(d, r)
	if err != nil {
		return 0, n, err
	}
	return d.Sum64(), n, nil
}

// Append appends the big-endian encoding of sum to b.
func Append(b []byte, sum uint64) []byte {
	return binary.BigEndian.AppendUint64(b, sum)
}
