package econ

import "github.com/danmuck/coordctl/internal/wire"

// PurchaseKind is the literal written to field 1 of every purchase request.
const PurchaseKind = 11

// EncodePurchaseRequest builds the purchase request body: four consecutive
// (tag, varint) pairs holding (11, targetID, currentBalance, price) in field
// numbers 1 through 4. Deterministic, no I/O.
func EncodePurchaseRequest(targetID, currentBalance, price uint64) []byte {
	body := make([]byte, 0, 16)
	body = wire.AppendField(body, 1, PurchaseKind)
	body = wire.AppendField(body, 2, targetID)
	body = wire.AppendField(body, 3, currentBalance)
	body = wire.AppendField(body, 4, price)
	return body
}
