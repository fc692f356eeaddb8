package wire

import (
	"bytes"
	"testing"

	"github.com/danmuck/coordctl/internal/testutil/testlog"
)

func TestReadFieldVarint(t *testing.T) {
	testlog.Start(t)
	buf := AppendField(nil, 4, 501)
	f, ok := ReadField(buf, 0)
	if !ok {
		t.Fatalf("read failed")
	}
	if f.Number != 4 || f.Type != TypeVarint || f.Uvarint != 501 {
		t.Fatalf("unexpected field: %+v", f)
	}
	if f.NextOffset != len(buf) {
		t.Fatalf("next offset %d, want %d", f.NextOffset, len(buf))
	}
}

func TestReadFieldLengthDelimited(t *testing.T) {
	testlog.Start(t)
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	buf := AppendBytesField(nil, 3, payload)
	f, ok := ReadField(buf, 0)
	if !ok {
		t.Fatalf("read failed")
	}
	if f.Number != 3 || f.Type != TypeLengthDelimited {
		t.Fatalf("unexpected field: %+v", f)
	}
	if !bytes.Equal(f.Bytes, payload) {
		t.Fatalf("payload mismatch: %x", f.Bytes)
	}
}

func TestReadFieldFixedWidthsSkipped(t *testing.T) {
	testlog.Start(t)
	// field 7 fixed64, then field 2 fixed32, then field 1 varint.
	buf := AppendUvarint(nil, 7<<3|uint64(TypeFixed64))
	buf = append(buf, make([]byte, 8)...)
	buf = AppendUvarint(buf, 2<<3|uint64(TypeFixed32))
	buf = append(buf, make([]byte, 4)...)
	buf = AppendField(buf, 1, 9)

	f, ok := ReadField(buf, 0)
	if !ok || f.Type != TypeFixed64 || f.Number != 7 {
		t.Fatalf("fixed64: %+v ok=%v", f, ok)
	}
	f, ok = ReadField(buf, f.NextOffset)
	if !ok || f.Type != TypeFixed32 || f.Number != 2 {
		t.Fatalf("fixed32: %+v ok=%v", f, ok)
	}
	f, ok = ReadField(buf, f.NextOffset)
	if !ok || f.Uvarint != 9 {
		t.Fatalf("trailing varint: %+v ok=%v", f, ok)
	}
}

func TestReadFieldUnknownWireType(t *testing.T) {
	testlog.Start(t)
	// Wire type 3 (start-group) is not part of the contract.
	buf := AppendUvarint(nil, 1<<3|3)
	if _, ok := ReadField(buf, 0); ok {
		t.Fatalf("unknown wire type accepted")
	}
}

func TestReadFieldTruncation(t *testing.T) {
	testlog.Start(t)
	cases := [][]byte{
		{},
		{0x08},             // varint tag, no value
		{0x12, 0x05, 0xaa}, // declared length 5, one byte present
		{0x0d, 0x01, 0x02}, // fixed32 tag, two bytes
		{0x09, 0x01},       // fixed64 tag, one byte
		{0x12, 0xff, 0xff}, // length varint never terminates
	}
	for _, buf := range cases {
		if _, ok := ReadField(buf, 0); ok {
			t.Fatalf("expected no field for %x", buf)
		}
	}
}

func TestReadFieldNextOffsetBounded(t *testing.T) {
	testlog.Start(t)
	buf := AppendField(nil, 1, 11)
	buf = AppendBytesField(buf, 2, []byte{1, 2, 3})
	buf = AppendField(buf, 3, 1<<40)
	for offset := 0; offset < len(buf); {
		f, ok := ReadField(buf, offset)
		if !ok {
			t.Fatalf("read failed at offset %d", offset)
		}
		if f.NextOffset <= offset || f.NextOffset > len(buf) {
			t.Fatalf("offset escaped bounds: %d -> %d (len=%d)", offset, f.NextOffset, len(buf))
		}
		offset = f.NextOffset
	}
}
