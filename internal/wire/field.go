package wire

// Type is the physical encoding of one field.
type Type uint8

// Wire types from the coordinator field contract.
const (
	TypeVarint          Type = 0
	TypeFixed64         Type = 1
	TypeLengthDelimited Type = 2
	TypeFixed32         Type = 5
)

const (
	fixed32Len = 4
	fixed64Len = 8
)

// Field is one decoded tagged field.
//
// Uvarint is set for TypeVarint fields, Bytes for TypeLengthDelimited.
// Fixed32/fixed64 fields are skipped over; their value is undefined.
// NextOffset is the offset of the first byte after the field.
type Field struct {
	Number     int
	Type       Type
	Uvarint    uint64
	Bytes      []byte
	NextOffset int
}

// ReadField decodes exactly one field from buf at offset. ok is false on
// truncation, overrun, or an unknown wire type; NextOffset never exceeds
// len(buf).
func ReadField(buf []byte, offset int) (Field, bool) {
	tag, next, ok := DecodeUvarint(buf, offset)
	if !ok {
		return Field{}, false
	}
	f := Field{
		Number: int(tag >> 3),
		Type:   Type(tag & 7),
	}
	switch f.Type {
	case TypeVarint:
		v, n, ok := DecodeUvarint(buf, next)
		if !ok {
			return Field{}, false
		}
		f.Uvarint = v
		f.NextOffset = n
	case TypeLengthDelimited:
		length, n, ok := DecodeUvarint(buf, next)
		if !ok {
			return Field{}, false
		}
		if length > uint64(len(buf)-n) {
			return Field{}, false
		}
		f.Bytes = buf[n : n+int(length)]
		f.NextOffset = n + int(length)
	case TypeFixed32:
		if len(buf)-next < fixed32Len {
			return Field{}, false
		}
		f.NextOffset = next + fixed32Len
	case TypeFixed64:
		if len(buf)-next < fixed64Len {
			return Field{}, false
		}
		f.NextOffset = next + fixed64Len
	default:
		return Field{}, false
	}
	return f, true
}

// AppendField appends a (tag, varint) pair for field number num.
func AppendField(dst []byte, num int, v uint64) []byte {
	dst = AppendUvarint(dst, uint64(num)<<3)
	return AppendUvarint(dst, v)
}

// AppendBytesField appends a length-delimited field for field number num.
func AppendBytesField(dst []byte, num int, b []byte) []byte {
	dst = AppendUvarint(dst, uint64(num)<<3|uint64(TypeLengthDelimited))
	dst = AppendUvarint(dst, uint64(len(b)))
	return append(dst, b...)
}
