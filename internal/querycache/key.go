package querycache

import (
	"encoding/json"
	"fmt"
)

// Key identifies one cached read: an endpoint plus its arguments. Two reads of
// the same endpoint with different arguments are separate entries.
type Key string

// NewKey builds a key from an endpoint name and its arguments. Map arguments
// serialize with sorted keys, so equal arguments always give equal keys.
func NewKey(endpoint string, args any) Key {
	if args == nil {
		return Key(endpoint)
	}
	if s, ok := args.(string); ok {
		return Key(endpoint + ":" + s)
	}
	b, err := json.Marshal(args)
	if err != nil {
		return Key(fmt.Sprintf("%s:%v", endpoint, args))
	}
	return Key(endpoint + ":" + string(b))
}
