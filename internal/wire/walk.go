package wire

// Match reports whether a field is the one a search is looking for.
type Match func(Field) bool

// FindFirst searches buf depth-first for the first field satisfying match.
//
// Fields at the current level are scanned first, in encounter order; if none
// match, the search descends into each length-delimited field's contents in
// the same order. The first positive match wins and halts the walk.
//
// A malformed region only ends the scan of that region; the search backs out
// and resumes with the remaining candidates of the parent level. Each descent
// operates on a strictly smaller slice than its parent (the tag and length
// prefix are excluded), so the walk terminates on any input without an
// explicit depth limit.
func FindFirst(buf []byte, match Match) (Field, bool) {
	for offset := 0; offset < len(buf); {
		f, ok := ReadField(buf, offset)
		if !ok {
			break
		}
		if match(f) {
			return f, true
		}
		offset = f.NextOffset
	}
	for offset := 0; offset < len(buf); {
		f, ok := ReadField(buf, offset)
		if !ok {
			break
		}
		if f.Type == TypeLengthDelimited {
			if inner, ok := FindFirst(f.Bytes, match); ok {
				return inner, true
			}
		}
		offset = f.NextOffset
	}
	return Field{}, false
}

// FindFirstVarint searches buf depth-first for the first varint field with
// the given field number.
func FindFirstVarint(buf []byte, num int) (uint64, bool) {
	f, ok := FindFirst(buf, func(f Field) bool {
		return f.Number == num && f.Type == TypeVarint
	})
	if !ok {
		return 0, false
	}
	return f.Uvarint, true
}

// Fields calls visit for each decodable field at the top level of buf, in
// order, stopping early if visit returns false. It does not descend.
func Fields(buf []byte, visit func(Field) bool) {
	for offset := 0; offset < len(buf); {
		f, ok := ReadField(buf, offset)
		if !ok {
			return
		}
		if !visit(f) {
			return
		}
		offset = f.NextOffset
	}
}
