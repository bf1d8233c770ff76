// Package lcs implements the canonical binary encoding used to exchange
// ledger records.
//
// Every value has exactly one valid encoding. Primitives are fixed
// width little-endian, lengths and union discriminants are minimal
// uleb128, records are the concatenation of their fields, and optional
// values carry a single presence byte. Top-level decoding is strict: the
// whole input must be consumed.
//
// Encoding and decoding are pure functions over their arguments and are
// safe for concurrent use.
package lcs

import (
	"fmt"
	"reflect"
	"runtime"
)

// Marshal returns the canonical encoding of v.
func Marshal(v Marshaler) []byte {
	s := NewSerializer()
	v.MarshalLCS(s)
	return s.Bytes()
}

// MarshalChecked is Marshal for values that may be incomplete. A nil
// value, or one holding a nil union field, yields ErrIncompleteValue
// instead of a panic.
func MarshalChecked(v Marshaler) (data []byte, err error) {
	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrIncompleteValue)
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			data, err = nil, fmt.Errorf("%w: %s: %v", ErrIncompleteValue, reflect.TypeOf(v), re)
		}
	}()
	return Marshal(v), nil
}

// Unmarshal decodes data into *v and fails if any byte is left over.
// *v is only assigned once the whole input decoded cleanly.
func Unmarshal[T any, P interface {
	*T
	Unmarshaler
}](data []byte, v P) error {
	var tmp T
	d := NewDeserializer(data)
	if err := P(&tmp).UnmarshalLCS(d); err != nil {
		return fmt.Errorf("decode %s: %w", reflect.TypeFor[T](), err)
	}
	if err := d.CheckFinished(); err != nil {
		return fmt.Errorf("decode %s: %w", reflect.TypeFor[T](), err)
	}
	*v = tmp
	return nil
}

// Deserialize decodes a top-level value with dec using DefaultLimits and
// rejects trailing bytes.
func Deserialize[T any](data []byte, dec DecodeFunc[T]) (T, error) {
	return DeserializeWithLimits(data, DefaultLimits, dec)
}

// DeserializeWithLimits is Deserialize with caller-supplied limits.
func DeserializeWithLimits[T any](data []byte, limits Limits, dec DecodeFunc[T]) (T, error) {
	var zero T
	d := NewDeserializerWithLimits(data, limits)
	v, err := dec(d)
	if err != nil {
		return zero, fmt.Errorf("decode %s: %w", reflect.TypeFor[T](), err)
	}
	if err := d.CheckFinished(); err != nil {
		return zero, fmt.Errorf("decode %s: %w", reflect.TypeFor[T](), err)
	}
	return v, nil
}
