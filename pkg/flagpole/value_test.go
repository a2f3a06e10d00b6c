// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import (
	"errors"
	"strconv"
	"testing"
)

func TestConvertRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		tok  string
		want any
	}{
		{"bool true", KindBool, "true", true},
		{"bool false", KindBool, "false", false},
		{"bool mixed case", KindBool, "TrUe", true},
		{"int", KindInt, "-42", int(-42)},
		{"int plus sign", KindInt, "+42", int(42)},
		{"int8 max", KindInt8, "127", int8(127)},
		{"int8 min", KindInt8, "-128", int8(-128)},
		{"int16", KindInt16, "-32768", int16(-32768)},
		{"int32", KindInt32, "2147483647", int32(2147483647)},
		{"int64", KindInt64, "-9223372036854775808", int64(-9223372036854775808)},
		{"uint", KindUint, "7", uint(7)},
		{"uint8 max", KindUint8, "255", uint8(255)},
		{"uint16", KindUint16, "65535", uint16(65535)},
		{"uint32", KindUint32, "4294967295", uint32(4294967295)},
		{"uint64 max", KindUint64, "18446744073709551615", uint64(18446744073709551615)},
		{"size", KindSize, "1048576", uint64(1048576)},
		{"uintptr", KindUintptr, "4096", uintptr(4096)},
		{"float32", KindFloat32, "3.5", float32(3.5)},
		{"float64", KindFloat64, "-2.25", float64(-2.25)},
		{"string", KindString, "hello", "hello"},
		{"string numeric", KindString, "123", "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := convert(tt.kind, tt.tok)
			if err != nil {
				t.Fatalf("convert(%v, %q) error = %v", tt.kind, tt.tok, err)
			}
			if v.Kind() != tt.kind {
				t.Errorf("Kind() = %v, want %v", v.Kind(), tt.kind)
			}
			if v.v != tt.want {
				t.Errorf("value = %#v, want %#v", v.v, tt.want)
			}
		})
	}
}

func TestConvertRange(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		tok  string
	}{
		{"int8 overflow", KindInt8, "128"},
		{"int8 underflow", KindInt8, "-129"},
		{"int16 overflow", KindInt16, "32768"},
		{"int32 overflow", KindInt32, "2147483648"},
		{"int64 overflow", KindInt64, "9223372036854775808"},
		{"uint8 overflow", KindUint8, "256"},
		{"uint16 overflow", KindUint16, "65536"},
		{"uint32 overflow", KindUint32, "4294967296"},
		{"uint64 overflow", KindUint64, "18446744073709551616"},
		{"uint negative", KindUint, "-1"},
		{"size negative", KindSize, "-7"},
		{"float64 overflow", KindFloat64, "1e400"},
		{"float32 overflow", KindFloat32, "1e64"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convert(tt.kind, tt.tok)
			if !errors.Is(err, strconv.ErrRange) {
				t.Errorf("convert(%v, %q) error = %v, want ErrRange", tt.kind, tt.tok, err)
			}
		})
	}
}

func TestConvertSyntax(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
		tok  string
	}{
		{"bool garbage", KindBool, "maybe"},
		{"int letters", KindInt, "12ab"},
		{"int empty", KindInt, ""},
		{"int bare sign", KindInt, "-"},
		{"int hex", KindInt, "0x10"},
		{"int float token", KindInt, "1.5"},
		{"uint letters", KindUint32, "abc"},
		{"float letters", KindFloat64, "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := convert(tt.kind, tt.tok)
			if !errors.Is(err, strconv.ErrSyntax) {
				t.Errorf("convert(%v, %q) error = %v, want ErrSyntax", tt.kind, tt.tok, err)
			}
		})
	}
}

func TestValueAccessors(t *testing.T) {
	v, err := convert(KindInt8, "-5")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Int(); got != -5 {
		t.Errorf("Int() = %d, want -5", got)
	}
	if got := v.Uint(); got != 0 {
		t.Errorf("Uint() on signed kind = %d, want 0", got)
	}

	v, err = convert(KindUintptr, "4096")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Uint(); got != 4096 {
		t.Errorf("Uint() = %d, want 4096", got)
	}

	v, err = convert(KindFloat32, "2.5")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Float(); got != 2.5 {
		t.Errorf("Float() = %v, want 2.5", got)
	}

	v, err = convert(KindString, "hi")
	if err != nil {
		t.Fatal(err)
	}
	if got := v.Str(); got != "hi" {
		t.Errorf("Str() = %q, want %q", got, "hi")
	}
	if v.Bool() {
		t.Error("Bool() on string kind = true, want false")
	}
}

func TestIsInteger(t *testing.T) {
	valid := []string{"0", "7", "-7", "+7", "12345678901234567890"}
	for _, s := range valid {
		if !isInteger(s) {
			t.Errorf("isInteger(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "-", "+", "1.5", "1e3", " 1", "1 ", "abc", "0x1"}
	for _, s := range invalid {
		if isInteger(s) {
			t.Errorf("isInteger(%q) = true, want false", s)
		}
	}
}
