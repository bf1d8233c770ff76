package types

import "github.com/blockberries/ledgertypes/lcs"

// ContractEventKind is the discriminant of a ContractEvent.
type ContractEventKind uint32

const (
	ContractEventKindV0 ContractEventKind = iota
)

// ContractEvent is an event emitted by a transaction.
type ContractEvent interface {
	lcs.Marshaler
	Kind() ContractEventKind
	isContractEvent()
}

// ContractEventVersion0 wraps a version 0 event.
type ContractEventVersion0 struct {
	Value ContractEventV0
}

func (ContractEventVersion0) Kind() ContractEventKind { return ContractEventKindV0 }
func (ContractEventVersion0) isContractEvent()        {}

func (e ContractEventVersion0) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(e.Kind()), e.Value.MarshalLCS)
}

// ContractEventV0 is the version 0 event body.
type ContractEventV0 struct {
	Key            EventKey
	SequenceNumber uint64
	TypeTag        TypeTag
	EventData      []byte
}

func (e ContractEventV0) MarshalLCS(s *lcs.Serializer) {
	e.Key.MarshalLCS(s)
	s.SerializeU64(e.SequenceNumber)
	e.TypeTag.MarshalLCS(s)
	s.SerializeBytes(e.EventData)
}

// DecodeContractEventV0 reads a ContractEventV0.
func DecodeContractEventV0(d *lcs.Deserializer) (ContractEventV0, error) {
	key, err := DecodeEventKey(d)
	if err != nil {
		return ContractEventV0{}, err
	}
	seq, err := d.DeserializeU64()
	if err != nil {
		return ContractEventV0{}, err
	}
	tag, err := DecodeTypeTag(d)
	if err != nil {
		return ContractEventV0{}, err
	}
	data, err := d.DeserializeBytes()
	if err != nil {
		return ContractEventV0{}, err
	}
	return ContractEventV0{Key: key, SequenceNumber: seq, TypeTag: tag, EventData: data}, nil
}

var contractEvents = lcs.NewUnion("ContractEvent", []lcs.DecodeFunc[ContractEvent]{
	ContractEventKindV0: func(d *lcs.Deserializer) (ContractEvent, error) {
		v, err := DecodeContractEventV0(d)
		if err != nil {
			return nil, err
		}
		return ContractEventVersion0{Value: v}, nil
	},
})

// DecodeContractEvent reads a ContractEvent.
func DecodeContractEvent(d *lcs.Deserializer) (ContractEvent, error) {
	return contractEvents.Deserialize(d)
}
