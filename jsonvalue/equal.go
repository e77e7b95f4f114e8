package jsonvalue

import (
	"encoding/json"
	"math/big"
)

// Equal reports structural equality per the spec's definition: same kind;
// numbers compared by numeric (decimal) value, not by text or float64;
// arrays compared pairwise in order; objects compared as key->value maps
// (order-independent).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber:
		return numbersEqual(a.n, b.n)
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.a) != len(b.a) {
			return false
		}
		for i := range a.a {
			if !Equal(a.a[i], b.a[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.o.Len() != b.o.Len() {
			return false
		}
		eq := true
		a.o.Range(func(k string, av Value) bool {
			bv, ok := b.o.Get(k)
			if !ok || !Equal(av, bv) {
				eq = false
				return false
			}
			return true
		})
		return eq
	default:
		return false
	}
}

func numbersEqual(x, y json.Number) bool {
	rx, okx := new(big.Rat).SetString(x.String())
	ry, oky := new(big.Rat).SetString(y.String())
	if !okx || !oky {
		// fall back to textual comparison for malformed number text
		return x.String() == y.String()
	}
	return rx.Cmp(ry) == 0
}
