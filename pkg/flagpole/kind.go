// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import "strconv"

// Kind identifies the native representation a flag value is converted to.
// The set is closed; registering a flag with an unknown kind panics.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindSize    // size-like unsigned value, stored as uint64
	KindUintptr // pointer-width unsigned value for raw addresses
	KindFloat32
	KindFloat64
	KindString
)

// String returns the display name used in help text.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindInt8:
		return "int8"
	case KindInt16:
		return "int16"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint:
		return "uint"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindUint64:
		return "uint64"
	case KindSize:
		return "size"
	case KindUintptr:
		return "uintptr"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// bits returns the destination width for numeric kinds.
func (k Kind) bits() int {
	switch k {
	case KindInt, KindUint:
		return strconv.IntSize
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindSize, KindFloat64:
		return 64
	case KindUintptr:
		return strconv.IntSize
	default:
		return 0
	}
}

func (k Kind) valid() bool {
	return k >= KindBool && k <= KindString
}
