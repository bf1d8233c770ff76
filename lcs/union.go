package lcs

import "fmt"

// Union is the immutable variant table of one tagged union type. The
// position of each decoder is its variant's discriminant.
type Union[T any] struct {
	name     string
	variants []DecodeFunc[T]
}

// NewUnion builds the table for the union named name. Build it from a
// slice literal keyed by the union's discriminant constants so that a
// duplicate key fails to compile. NewUnion panics on an empty table or
// on a gap, since discriminants must be dense.
func NewUnion[T any](name string, variants []DecodeFunc[T]) *Union[T] {
	if len(variants) == 0 {
		panic(fmt.Sprintf("lcs: union %s has no variants", name))
	}
	for i, v := range variants {
		if v == nil {
			panic(fmt.Sprintf("lcs: union %s has no variant at index %d", name, i))
		}
	}
	table := make([]DecodeFunc[T], len(variants))
	copy(table, variants)
	return &Union[T]{name: name, variants: table}
}

// Name returns the union's type name.
func (u *Union[T]) Name() string { return u.name }

// Len returns the number of variants.
func (u *Union[T]) Len() int { return len(u.variants) }

// Deserialize reads a discriminant and the selected variant's payload.
func (u *Union[T]) Deserialize(d *Deserializer) (T, error) {
	var zero T
	start := d.Offset()
	index, err := d.DeserializeVariantIndex()
	if err != nil {
		return zero, err
	}
	if uint64(index) >= uint64(len(u.variants)) {
		return zero, NewDecodeError(ErrUnknownVariant, start,
			fmt.Sprintf("%s has no variant %d", u.name, index))
	}
	if err := d.IncreaseContainerDepth(); err != nil {
		return zero, err
	}
	v, err := u.variants[index](d)
	d.DecreaseContainerDepth()
	if err != nil {
		return zero, err
	}
	return v, nil
}

// SerializeVariant writes the discriminant of a variant followed by its
// payload. payload may be nil for variants that carry no data.
func SerializeVariant(s *Serializer, index uint32, payload func(s *Serializer)) {
	s.SerializeVariantIndex(index)
	if payload != nil {
		payload(s)
	}
}
