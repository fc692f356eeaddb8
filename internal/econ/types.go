package econ

// Attribute is one typed attribute on an economy item. DefIndex selects how
// downstream consumers reinterpret ValueHex; no reinterpretation happens here.
type Attribute struct {
	DefIndex int
	ValueHex string
}

// Item is a server-issued economy item instance. An item is valid only if
// DefIndex is nonzero.
type Item struct {
	DefIndex   int
	Attributes []Attribute
}

// Balance bounds. Values outside the range are discarded during extraction,
// never attached.
const (
	MinBalance = 0
	MaxBalance = 5000
)

// Field numbers of the item shape inside coordinator payloads.
const (
	itemFieldDefIndex  = 4
	itemFieldAttribute = 12

	attrFieldDefIndex = 1
	attrFieldValue    = 3
)

// Field numbers of the generic cache container the balance hides in.
const (
	cacheFieldTypeID  = 1
	cacheFieldObjectA = 2
	cacheFieldObjectB = 3

	balanceTypeID      = 6
	balanceRecordField = 2
)
