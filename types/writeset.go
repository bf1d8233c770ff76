package types

import "github.com/blockberries/ledgertypes/lcs"

// WriteOpKind is the discriminant of a WriteOp.
type WriteOpKind uint32

const (
	WriteOpKindDeletion WriteOpKind = iota
	WriteOpKindValue
)

// WriteOp is a single state change at an access path.
type WriteOp interface {
	lcs.Marshaler
	Kind() WriteOpKind
	isWriteOp()
}

// WriteOpDeletion removes the value at the path.
type WriteOpDeletion struct{}

// WriteOpValue stores Value at the path.
type WriteOpValue struct {
	Value []byte
}

func (WriteOpDeletion) Kind() WriteOpKind { return WriteOpKindDeletion }
func (WriteOpValue) Kind() WriteOpKind    { return WriteOpKindValue }

func (WriteOpDeletion) isWriteOp() {}
func (WriteOpValue) isWriteOp()    {}

func (w WriteOpDeletion) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(w.Kind()), nil)
}

func (w WriteOpValue) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(w.Kind()), func(s *lcs.Serializer) { s.SerializeBytes(w.Value) })
}

var writeOps = lcs.NewUnion("WriteOp", []lcs.DecodeFunc[WriteOp]{
	WriteOpKindDeletion: func(*lcs.Deserializer) (WriteOp, error) { return WriteOpDeletion{}, nil },
	WriteOpKindValue: func(d *lcs.Deserializer) (WriteOp, error) {
		v, err := d.DeserializeBytes()
		if err != nil {
			return nil, err
		}
		return WriteOpValue{Value: v}, nil
	},
})

// DecodeWriteOp reads a WriteOp.
func DecodeWriteOp(d *lcs.Deserializer) (WriteOp, error) {
	return writeOps.Deserialize(d)
}

// WriteSetEntry is one (path, op) entry of a write set.
type WriteSetEntry = lcs.Pair[AccessPath, WriteOp]

// WriteSetMut is the ordered list of writes. Entries keep the order
// they were given in; duplicates are neither merged nor rejected.
type WriteSetMut struct {
	WriteSet []WriteSetEntry
}

func (w WriteSetMut) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializePairs(s, w.WriteSet, lcs.Encode[AccessPath], lcs.Encode[WriteOp])
}

// DecodeWriteSetMut reads a WriteSetMut.
func DecodeWriteSetMut(d *lcs.Deserializer) (WriteSetMut, error) {
	entries, err := lcs.DeserializePairs(d, DecodeAccessPath, DecodeWriteOp)
	if err != nil {
		return WriteSetMut{}, err
	}
	return WriteSetMut{WriteSet: entries}, nil
}

// WriteSet is a finalized WriteSetMut.
type WriteSet struct {
	Value WriteSetMut
}

func (w WriteSet) MarshalLCS(s *lcs.Serializer) { w.Value.MarshalLCS(s) }

// DecodeWriteSet reads a WriteSet.
func DecodeWriteSet(d *lcs.Deserializer) (WriteSet, error) {
	v, err := DecodeWriteSetMut(d)
	if err != nil {
		return WriteSet{}, err
	}
	return WriteSet{Value: v}, nil
}

// ChangeSet is a write set together with the events it emits.
type ChangeSet struct {
	WriteSet WriteSet
	Events   []ContractEvent
}

func (c ChangeSet) MarshalLCS(s *lcs.Serializer) {
	c.WriteSet.MarshalLCS(s)
	lcs.SerializeSeq(s, c.Events, lcs.Encode[ContractEvent])
}

// DecodeChangeSet reads a ChangeSet.
func DecodeChangeSet(d *lcs.Deserializer) (ChangeSet, error) {
	ws, err := DecodeWriteSet(d)
	if err != nil {
		return ChangeSet{}, err
	}
	events, err := lcs.DeserializeSeq(d, DecodeContractEvent)
	if err != nil {
		return ChangeSet{}, err
	}
	return ChangeSet{WriteSet: ws, Events: events}, nil
}

// UnmarshalLCS implements lcs.Unmarshaler.
func (c *ChangeSet) UnmarshalLCS(d *lcs.Deserializer) error {
	v, err := DecodeChangeSet(d)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// WriteSetPayloadKind is the discriminant of a WriteSetPayload.
type WriteSetPayloadKind uint32

const (
	WriteSetPayloadKindDirect WriteSetPayloadKind = iota
	WriteSetPayloadKindScript
)

// WriteSetPayload is the body of a write-set transaction.
type WriteSetPayload interface {
	lcs.Marshaler
	Kind() WriteSetPayloadKind
	isWriteSetPayload()
}

// WriteSetPayloadDirect applies a change set as is.
type WriteSetPayloadDirect struct {
	Value ChangeSet
}

// WriteSetPayloadScript computes the write set by running Script as
// ExecuteAs.
type WriteSetPayloadScript struct {
	ExecuteAs AccountAddress
	Script    Script
}

func (WriteSetPayloadDirect) Kind() WriteSetPayloadKind { return WriteSetPayloadKindDirect }
func (WriteSetPayloadScript) Kind() WriteSetPayloadKind { return WriteSetPayloadKindScript }

func (WriteSetPayloadDirect) isWriteSetPayload() {}
func (WriteSetPayloadScript) isWriteSetPayload() {}

func (p WriteSetPayloadDirect) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(p.Kind()), p.Value.MarshalLCS)
}

func (p WriteSetPayloadScript) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(p.Kind()), func(s *lcs.Serializer) {
		p.ExecuteAs.MarshalLCS(s)
		p.Script.MarshalLCS(s)
	})
}

var writeSetPayloads = lcs.NewUnion("WriteSetPayload", []lcs.DecodeFunc[WriteSetPayload]{
	WriteSetPayloadKindDirect: func(d *lcs.Deserializer) (WriteSetPayload, error) {
		cs, err := DecodeChangeSet(d)
		if err != nil {
			return nil, err
		}
		return WriteSetPayloadDirect{Value: cs}, nil
	},
	WriteSetPayloadKindScript: func(d *lcs.Deserializer) (WriteSetPayload, error) {
		addr, err := DecodeAccountAddress(d)
		if err != nil {
			return nil, err
		}
		script, err := DecodeScript(d)
		if err != nil {
			return nil, err
		}
		return WriteSetPayloadScript{ExecuteAs: addr, Script: script}, nil
	},
})

// DecodeWriteSetPayload reads a WriteSetPayload.
func DecodeWriteSetPayload(d *lcs.Deserializer) (WriteSetPayload, error) {
	return writeSetPayloads.Deserialize(d)
}
