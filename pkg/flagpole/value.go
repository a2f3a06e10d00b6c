// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import (
	"strconv"
	"strings"
)

// Value is a tagged union holding a converted flag value alongside its
// kind. A Value is valid from registration time: until the flag is matched
// on the command line it carries the zero value of its kind.
type Value struct {
	kind Kind
	v    any
}

// Kind returns the value's kind tag.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean value, or false for non-boolean kinds.
func (v Value) Bool() bool {
	b, _ := v.v.(bool)
	return b
}

// Int returns signed integer kinds widened to int64. Non-signed kinds
// return 0.
func (v Value) Int() int64 {
	switch n := v.v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	}
	return 0
}

// Uint returns unsigned integer kinds widened to uint64, including size
// and uintptr values. Non-unsigned kinds return 0.
func (v Value) Uint() uint64 {
	switch n := v.v.(type) {
	case uint:
		return uint64(n)
	case uint8:
		return uint64(n)
	case uint16:
		return uint64(n)
	case uint32:
		return uint64(n)
	case uint64:
		return n
	case uintptr:
		return uint64(n)
	}
	return 0
}

// Float returns float kinds widened to float64. Non-float kinds return 0.
func (v Value) Float() float64 {
	switch f := v.v.(type) {
	case float32:
		return float64(f)
	case float64:
		return f
	}
	return 0
}

// Str returns the string value, or "" for non-string kinds.
func (v Value) Str() string {
	s, _ := v.v.(string)
	return s
}

// zeroValue returns the Value a freshly registered flag of kind k holds.
func zeroValue(k Kind) Value {
	var v any
	switch k {
	case KindBool:
		v = false
	case KindInt:
		v = int(0)
	case KindInt8:
		v = int8(0)
	case KindInt16:
		v = int16(0)
	case KindInt32:
		v = int32(0)
	case KindInt64:
		v = int64(0)
	case KindUint:
		v = uint(0)
	case KindUint8:
		v = uint8(0)
	case KindUint16:
		v = uint16(0)
	case KindUint32:
		v = uint32(0)
	case KindUint64, KindSize:
		v = uint64(0)
	case KindUintptr:
		v = uintptr(0)
	case KindFloat32:
		v = float32(0)
	case KindFloat64:
		v = float64(0)
	case KindString:
		v = ""
	}
	return Value{kind: k, v: v}
}

// isInteger reports whether s is an optional sign followed by one or more
// decimal digits and nothing else.
func isInteger(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// convert parses tok into a Value of kind k. Returned errors wrap
// strconv.ErrSyntax or strconv.ErrRange so callers can distinguish a
// malformed token from one that exceeds the destination width.
func convert(k Kind, tok string) (Value, error) {
	switch k {
	case KindBool:
		switch {
		case strings.EqualFold(tok, "true"):
			return Value{kind: k, v: true}, nil
		case strings.EqualFold(tok, "false"):
			return Value{kind: k, v: false}, nil
		default:
			return Value{}, strconv.ErrSyntax
		}

	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		if !isInteger(tok) {
			return Value{}, strconv.ErrSyntax
		}
		n, err := strconv.ParseInt(tok, 10, k.bits())
		if err != nil {
			return Value{}, err
		}
		var v any
		switch k {
		case KindInt:
			v = int(n)
		case KindInt8:
			v = int8(n)
		case KindInt16:
			v = int16(n)
		case KindInt32:
			v = int32(n)
		case KindInt64:
			v = n
		}
		return Value{kind: k, v: v}, nil

	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64, KindSize, KindUintptr:
		if !isInteger(tok) {
			return Value{}, strconv.ErrSyntax
		}
		if tok[0] == '-' {
			// A negative token for an unsigned destination is a range
			// failure, not a syntax one.
			return Value{}, strconv.ErrRange
		}
		n, err := strconv.ParseUint(strings.TrimPrefix(tok, "+"), 10, k.bits())
		if err != nil {
			return Value{}, err
		}
		var v any
		switch k {
		case KindUint:
			v = uint(n)
		case KindUint8:
			v = uint8(n)
		case KindUint16:
			v = uint16(n)
		case KindUint32:
			v = uint32(n)
		case KindUint64, KindSize:
			v = n
		case KindUintptr:
			v = uintptr(n)
		}
		return Value{kind: k, v: v}, nil

	case KindFloat32, KindFloat64:
		f, err := strconv.ParseFloat(tok, k.bits())
		if err != nil {
			return Value{}, err
		}
		if k == KindFloat32 {
			return Value{kind: k, v: float32(f)}, nil
		}
		return Value{kind: k, v: f}, nil

	case KindString:
		return Value{kind: k, v: tok}, nil
	}
	return Value{}, strconv.ErrSyntax
}
