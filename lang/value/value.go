// Package value implements the runtime data model shared by the resolver
// and interpreter: the tagged Value union, chained Environments, and the
// callable/class/instance object model described in spec.md §3/§4.5.
//
// A Value is represented as a plain Go any, tagged by its dynamic type: nil,
// bool, float64, string, Callable, or *Instance. There is no wrapper type —
// Lox has exactly the primitives Go's any already distinguishes natively.
package value

import (
	"fmt"
	"strconv"
)

// Value is a Lox runtime value: nil, bool, float64, string, Callable, or
// *Instance.
type Value = any

// Truthy implements spec.md §4.6: nil and false are false, everything else
// (including 0 and "") is true.
func Truthy(v Value) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// Equal implements the structural equality spec.md §4.6 requires for "==":
// nil equals only nil; numbers compare by IEEE rules (so NaN != NaN);
// strings and bools by value; everything else (callables, instances) by
// identity.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if an, ok := a.(float64); ok {
		bn, ok := b.(float64)
		return ok && an == bn
	}
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		return ok && as == bs
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return a == b
}

// Stringify renders v the way the print statement does, per spec.md §4.6:
// nil as "nil", integral-valued numbers without a trailing ".0", booleans
// as "true"/"false", strings verbatim, and callables/instances via their
// own String method.
func Stringify(v Value) string {
	switch t := v.(type) {
	case nil:
		return "nil"
	case float64:
		return stringifyNumber(t)
	case bool:
		if t {
			return "true"
		}
		return "false"
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

func stringifyNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
