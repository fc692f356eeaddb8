package wire

import (
	"testing"

	"github.com/danmuck/coordctl/internal/testutil/testlog"
)

func varintByNumber(num int) Match {
	return func(f Field) bool {
		return f.Number == num && f.Type == TypeVarint
	}
}

func TestFindFirstTopLevel(t *testing.T) {
	testlog.Start(t)
	buf := AppendField(nil, 1, 10)
	buf = AppendField(buf, 4, 501)
	f, ok := FindFirst(buf, varintByNumber(4))
	if !ok || f.Uvarint != 501 {
		t.Fatalf("find: %+v ok=%v", f, ok)
	}
}

func TestFindFirstNested(t *testing.T) {
	testlog.Start(t)
	inner := AppendField(nil, 4, 77)
	middle := AppendBytesField(nil, 9, inner)
	buf := AppendField(nil, 1, 3)
	buf = AppendBytesField(buf, 2, middle)

	v, ok := FindFirstVarint(buf, 4)
	if !ok || v != 77 {
		t.Fatalf("nested find: v=%d ok=%v", v, ok)
	}
}

func TestFindFirstPrefersCurrentLevel(t *testing.T) {
	testlog.Start(t)
	// A nested field 4 appears before the top-level one in byte order, but
	// the current level is scanned completely first.
	inner := AppendField(nil, 4, 1)
	buf := AppendBytesField(nil, 2, inner)
	buf = AppendField(buf, 4, 2)

	v, ok := FindFirstVarint(buf, 4)
	if !ok || v != 2 {
		t.Fatalf("want top-level match 2, got v=%d ok=%v", v, ok)
	}
}

func TestFindFirstSiblingOrder(t *testing.T) {
	testlog.Start(t)
	first := AppendField(nil, 4, 100)
	second := AppendField(nil, 4, 200)
	buf := AppendBytesField(nil, 2, first)
	buf = AppendBytesField(buf, 3, second)

	v, ok := FindFirstVarint(buf, 4)
	if !ok || v != 100 {
		t.Fatalf("want first sibling match 100, got v=%d ok=%v", v, ok)
	}
}

func TestFindFirstMalformedBranchNonFatal(t *testing.T) {
	testlog.Start(t)
	// First nested region is garbage; the match lives in its sibling.
	garbage := []byte{0x12, 0xff, 0xff, 0xff}
	good := AppendField(nil, 4, 42)
	buf := AppendBytesField(nil, 2, garbage)
	buf = AppendBytesField(buf, 3, good)

	v, ok := FindFirstVarint(buf, 4)
	if !ok || v != 42 {
		t.Fatalf("malformed sibling aborted walk: v=%d ok=%v", v, ok)
	}
}

func TestFindFirstNoMatchTerminates(t *testing.T) {
	testlog.Start(t)
	// Deeply nested regions with no match; also a region whose declared
	// lengths are self-referential garbage.
	buf := AppendField(nil, 1, 1)
	for i := 0; i < 20; i++ {
		buf = AppendBytesField(nil, 2, buf)
	}
	buf = append(buf, 0x12, 0x02, 0x12, 0x00)
	if _, ok := FindFirst(buf, varintByNumber(4)); ok {
		t.Fatalf("unexpected match")
	}
}

func TestFieldsStopsEarly(t *testing.T) {
	testlog.Start(t)
	buf := AppendField(nil, 1, 1)
	buf = AppendField(buf, 2, 2)
	buf = AppendField(buf, 3, 3)
	var seen []int
	Fields(buf, func(f Field) bool {
		seen = append(seen, f.Number)
		return f.Number < 2
	})
	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Fatalf("unexpected visit order: %v", seen)
	}
}
