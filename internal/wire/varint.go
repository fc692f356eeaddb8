package wire

// Varint continuation bit and payload mask.
const (
	continueBit = 0x80
	payloadMask = 0x7f
)

// DecodeUvarint reads one base-128 varint from buf starting at offset.
// It returns the value and the offset of the first byte after it.
// ok is false if offset is out of range or the buffer ends mid-sequence.
//
// The accumulator is 64 bits wide; identifiers larger than 32 bits decode
// without truncation.
func DecodeUvarint(buf []byte, offset int) (value uint64, next int, ok bool) {
	if offset < 0 {
		return 0, 0, false
	}
	var shift uint
	for i := offset; i < len(buf); i++ {
		b := buf[i]
		value |= uint64(b&payloadMask) << shift
		if b&continueBit == 0 {
			return value, i + 1, true
		}
		shift += 7
		if shift >= 64 {
			return 0, 0, false
		}
	}
	return 0, 0, false
}

// AppendUvarint appends the varint encoding of v to dst and returns the
// extended slice. Zero encodes as a single zero byte.
func AppendUvarint(dst []byte, v uint64) []byte {
	for v >= continueBit {
		dst = append(dst, byte(v)|continueBit)
		v >>= 7
	}
	return append(dst, byte(v))
}

// EncodeUvarint returns the varint encoding of v.
func EncodeUvarint(v uint64) []byte {
	return AppendUvarint(make([]byte, 0, 10), v)
}
