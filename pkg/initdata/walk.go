package initdata

import (
	"github.com/tidwall/gjson"
)

// Kind of a json tree node
type Kind int

// node kinds
const (
	Scalar Kind = iota
	Object
	Array
)

// KindOf classifies a node
func KindOf(n gjson.Result) Kind {
	switch {
	case n.IsObject():
		return Object
	case n.IsArray():
		return Array
	default:
		return Scalar
	}
}

// Walk visits n and all its descendants depth-first, parents before children,
// object members and array elements in document order.
func Walk(n gjson.Result, visit func(n gjson.Result)) {
	visit(n)
	if KindOf(n) == Scalar {
		return
	}
	n.ForEach(func(_, child gjson.Result) bool {
		Walk(child, visit)
		return true
	})
}

// Collect returns every value stored under key in any object of the tree.
// Records nested inside a collected record are collected too.
func Collect(root gjson.Result, key string) []gjson.Result {
	var res []gjson.Result
	Walk(root, func(n gjson.Result) {
		if KindOf(n) != Object {
			return
		}
		if v := n.Get(gjson.Escape(key)); v.Exists() {
			res = append(res, v)
		}
	})
	return res
}
