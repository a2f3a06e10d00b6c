// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagpole

import "fmt"

// helpName is reserved; it may not be registered and always renders usage.
const helpName = "help"

// Flag is a single named, typed command-line option.
type Flag struct {
	name        string
	kind        Kind
	description string
	required    bool
	validator   func(Value) bool
	validateMsg string

	value Value
	set   bool
}

// Name returns the flag's name without dashes.
func (f *Flag) Name() string { return f.name }

// Kind returns the flag's declared value kind.
func (f *Flag) Kind() Kind { return f.kind }

// Description returns the registration-time description.
func (f *Flag) Description() string { return f.description }

// Required reports whether the flag was registered as required.
func (f *Flag) Required() bool { return f.required }

// Value returns the flag's current value: the last value assigned during
// parsing, or the zero value of its kind if the flag was never matched.
func (f *Flag) Value() Value { return f.value }

// Seen reports whether the flag was matched during the last parse.
func (f *Flag) Seen() bool { return f.set }

// Validate attaches a predicate over the converted value. The predicate
// runs immediately after every successful conversion; a false return fails
// the parse with msg (or a generic message when msg is empty). It returns
// the flag for chaining.
func (f *Flag) Validate(fn func(Value) bool, msg string) *Flag {
	f.validator = fn
	f.validateMsg = msg
	return f
}

// assign stores v and runs the validator, if any.
func (f *Flag) assign(v Value) error {
	f.value = v
	f.set = true
	if f.validator != nil && !f.validator(v) {
		return &ValidationError{Flag: f.name, Message: f.validateMsg}
	}
	return nil
}

// FlagSet is an ordered collection of flags. Registration order defines
// help-listing order. Lookup is a linear scan; the first registered flag
// with a given name wins.
type FlagSet struct {
	flags    []*Flag
	capacity int // 0 means unbounded
}

// NewFlagSet returns a FlagSet holding at most capacity flags, or an
// unbounded set when capacity is zero or negative.
func NewFlagSet(capacity int) *FlagSet {
	return &FlagSet{capacity: capacity}
}

// Add registers a flag and returns its descriptor for chaining. It panics
// on an empty or reserved name, an unknown kind, or a full table; these
// are programmer errors, not user input.
func (fs *FlagSet) Add(name string, kind Kind, description string, required bool) *Flag {
	if name == "" {
		panic("flagpole: flag name must not be empty")
	}
	if name == helpName {
		panic(`flagpole: flag name "help" is reserved`)
	}
	if !kind.valid() {
		panic(fmt.Sprintf("flagpole: unknown kind for flag %q", name))
	}
	if fs.capacity > 0 && len(fs.flags) >= fs.capacity {
		panic(fmt.Sprintf("flagpole: flag table full, cannot add flag %q", name))
	}
	f := &Flag{
		name:        name,
		kind:        kind,
		description: description,
		required:    required,
		value:       zeroValue(kind),
	}
	fs.flags = append(fs.flags, f)
	return f
}

// Lookup returns the current value of the named flag.
func (fs *FlagSet) Lookup(name string) (Value, bool) {
	if f := fs.find(name); f != nil {
		return f.value, true
	}
	return Value{}, false
}

// Flags returns the registered flags in registration order. The returned
// slice is shared; callers must not modify it.
func (fs *FlagSet) Flags() []*Flag { return fs.flags }

// Len returns the number of registered flags.
func (fs *FlagSet) Len() int { return len(fs.flags) }

func (fs *FlagSet) find(name string) *Flag {
	for _, f := range fs.flags {
		if f.name == name {
			return f
		}
	}
	return nil
}

// Get returns the named flag's value as its concrete Go type. The second
// result is false when the flag is unknown or T does not match the flag's
// kind. Signed widths use their exact types (int8, int16, ...), size
// values are uint64 and uintptr values are uintptr.
func Get[T any](fs *FlagSet, name string) (T, bool) {
	var zero T
	f := fs.find(name)
	if f == nil {
		return zero, false
	}
	v, ok := f.value.v.(T)
	if !ok {
		return zero, false
	}
	return v, true
}
