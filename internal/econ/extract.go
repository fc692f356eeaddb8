package econ

import (
	"encoding/hex"

	"github.com/danmuck/coordctl/internal/wire"
)

// FindDefIndexDeep searches buf at any nesting depth for a varint field 4
// holding an item definition index. A decoded value of zero counts as absent.
func FindDefIndexDeep(buf []byte) (int, bool) {
	v, ok := wire.FindFirstVarint(buf, itemFieldDefIndex)
	if !ok || v == 0 {
		return 0, false
	}
	return int(v), true
}

// FindItem reconstructs the first economy item found in buf.
//
// At every nesting level the region is first parsed directly as an item
// (field 4 definition index, repeated field 12 attribute sub-messages). The
// parse is accepted only if the definition index is nonzero; otherwise the
// search descends into each length-delimited field and retries. The first
// accepted item in depth-first order wins.
func FindItem(buf []byte) (Item, bool) {
	if item, ok := parseItem(buf); ok {
		return item, true
	}
	var (
		found bool
		item  Item
	)
	wire.Fields(buf, func(f wire.Field) bool {
		if f.Type != wire.TypeLengthDelimited {
			return true
		}
		if inner, ok := FindItem(f.Bytes); ok {
			item = inner
			found = true
			return false
		}
		return true
	})
	return item, found
}

// parseItem attempts a direct parse of buf as an item record. It fails if
// the region is not cleanly decodable end to end or if no nonzero definition
// index is present.
func parseItem(buf []byte) (Item, bool) {
	var item Item
	offset := 0
	for offset < len(buf) {
		f, ok := wire.ReadField(buf, offset)
		if !ok {
			return Item{}, false
		}
		offset = f.NextOffset
		switch {
		case f.Number == itemFieldDefIndex && f.Type == wire.TypeVarint:
			item.DefIndex = int(f.Uvarint)
		case f.Number == itemFieldAttribute && f.Type == wire.TypeLengthDelimited:
			attr, ok := parseAttribute(f.Bytes)
			if !ok {
				return Item{}, false
			}
			item.Attributes = append(item.Attributes, attr)
		}
	}
	if item.DefIndex == 0 {
		return Item{}, false
	}
	return item, true
}

func parseAttribute(buf []byte) (Attribute, bool) {
	var attr Attribute
	offset := 0
	for offset < len(buf) {
		f, ok := wire.ReadField(buf, offset)
		if !ok {
			return Attribute{}, false
		}
		offset = f.NextOffset
		switch {
		case f.Number == attrFieldDefIndex && f.Type == wire.TypeVarint:
			attr.DefIndex = int(f.Uvarint)
		case f.Number == attrFieldValue && f.Type == wire.TypeLengthDelimited:
			attr.ValueHex = hex.EncodeToString(f.Bytes)
		}
	}
	return attr, true
}

// FindBalanceInCache extracts an account balance from a generic cache
// container.
//
// One pass per level: field 1 (varint) is tracked as the level's type
// discriminator, the bytes of whichever of field 2/3 is length-delimited are
// captured as the candidate payload, and every length-delimited field is
// recursed into as it is encountered. A deeper match short-circuits outward
// immediately. Only when no deeper level produced a result is the local state
// consulted: discriminator 6 with a captured payload parses the payload as a
// record whose varint field 2 is the balance. Values outside 0..5000 are
// treated as absent.
func FindBalanceInCache(buf []byte) (int, bool) {
	var (
		typeID  uint64
		payload []byte
		havePay bool

		deep     int
		haveDeep bool
	)
	wire.Fields(buf, func(f wire.Field) bool {
		if f.Number == cacheFieldTypeID && f.Type == wire.TypeVarint {
			typeID = f.Uvarint
		}
		if f.Type == wire.TypeLengthDelimited {
			if f.Number == cacheFieldObjectA || f.Number == cacheFieldObjectB {
				payload = f.Bytes
				havePay = true
			}
			if bal, ok := FindBalanceInCache(f.Bytes); ok {
				deep = bal
				haveDeep = true
				return false
			}
		}
		return true
	})
	if haveDeep {
		return deep, true
	}
	if typeID != balanceTypeID || !havePay {
		return 0, false
	}
	return parseBalanceRecord(payload)
}

func parseBalanceRecord(buf []byte) (int, bool) {
	var (
		balance uint64
		found   bool
	)
	wire.Fields(buf, func(f wire.Field) bool {
		if f.Number == balanceRecordField && f.Type == wire.TypeVarint {
			balance = f.Uvarint
			found = true
			return false
		}
		return true
	})
	if !found || balance > MaxBalance {
		return 0, false
	}
	return int(balance), true
}
