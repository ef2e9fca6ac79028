// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package checksum_test

import (
	"bytes"
	"errors"
	"hash"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"code.hybscloud.com/plumb/checksum"
)

var _ hash.Hash64 = checksum.New()

func TestSumKnownValues(t *testing.T) {
	// XXH64, seed 0
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0xef46db3751d8e999},
		{"a", 0xd24ec4f1a98c6e5b},
		{"asdf", 0x415872f599cea71e},
	}
	for _, tt := range tests {
		if got := checksum.SumString(tt.in); got != tt.want {
			t.Fatalf("SumString(%q): got %#x, want %#x", tt.in, got, tt.want)
		}
		if got := checksum.Sum64([]byte(tt.in)); got != tt.want {
			t.Fatalf("Sum64(%q): got %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestDigestIncremental(t *testing.T) {
	data := strings.Repeat("plumbing ", 1000)
	want := checksum.SumString(data)

	d := checksum.New()
	for chunk := range strings.SplitSeq(data, " ") {
		d.WriteString(chunk)
		d.Write([]byte{' '})
	}
	// SplitSeq yields a trailing empty chunk after the final separator
	if d.Len() != int64(len(data))+1 {
		t.Fatalf("Len: got %d, want %d", d.Len(), len(data)+1)
	}

	d.Reset()
	if d.Len() != 0 {
		t.Fatalf("Len after Reset: got %d", d.Len())
	}
	io.WriteString(d, data)
	if got := d.Sum64(); got != want {
		t.Fatalf("incremental: got %#x, want %#x", got, want)
	}
	if d.Size() != checksum.Size {
		t.Fatalf("Size: got %d, want %d", d.Size(), checksum.Size)
	}
}

func TestSumReader(t *testing.T) {
	data := bytes.Repeat([]byte{0x5a}, 70000)
	sum, n, err := checksum.SumReader(iotest.HalfReader(bytes.NewReader(data)))
	if err != nil {
		t.Fatalf("SumReader: %v", err)
	}
	if n != int64(len(data)) || sum != checksum.Sum64(data) {
		t.Fatalf("SumReader: got %#x (%d bytes), want %#x (%d bytes)", sum, n, checksum.Sum64(data), len(data))
	}

	boom := errors.New("boom")
	if _, _, err := checksum.SumReader(iotest.ErrReader(boom)); !errors.Is(err, boom) {
		t.Fatalf("SumReader error: got %v, want %v", err, boom)
	}
}

func TestAppend(t *testing.T) {
	b := checksum.Append([]byte{0xff}, 0x0102030405060708)
	want := []byte{0xff, 1, 2, 3, 4, 5, 6, 7, 8}
	if !bytes.Equal(b, want) {
		t.Fatalf("Append: got %x, want %x", b, want)
	}
	if d := checksum.New(); !bytes.Equal(d.Sum(nil), checksum.Append(nil, d.Sum64())) {
		t.Fatalf("Append disagrees with Digest.Sum")
	}
}
