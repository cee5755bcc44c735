package main

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/unkn0wn-root/rlp"
	"github.com/unkn0wn-root/rlp/normalize"
)

// parseLiteral reads a JSON literal: arrays are lists, strings are text or
// 0x-hex, numbers are non-negative integers. Anything that is not JSON and
// does not open like an array, object or quoted string is taken as one
// string, so `rlp encode dog` and `rlp encode 0x0400` work without quoting.
func parseLiteral(s string) (rlp.Value, error) {
	if !json.Valid([]byte(s)) {
		if t := strings.TrimSpace(s); t != "" && strings.ContainsRune(`["{`, rune(t[0])) {
			var x any
			return rlp.Value{}, json.Unmarshal([]byte(s), &x)
		}
		return normalize.String(s)
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(s)))
	dec.UseNumber()
	var x any
	if err := dec.Decode(&x); err != nil {
		return rlp.Value{}, err
	}
	return normalize.Value(x)
}
