package types

import "github.com/blockberries/ledgertypes/lcs"

// MetadataKind is the discriminant of a Metadata.
type MetadataKind uint32

const (
	MetadataKindUndefined MetadataKind = iota
	MetadataKindGeneral
	MetadataKindTravelRule
	MetadataKindUnstructuredBytes
)

// Metadata is the optional payment metadata attached to a transfer.
type Metadata interface {
	lcs.Marshaler
	Kind() MetadataKind
	isMetadata()
}

type (
	MetadataUndefined         struct{}
	MetadataGeneral           struct{ Value GeneralMetadata }
	MetadataTravelRule        struct{ Value TravelRuleMetadata }
	MetadataUnstructuredBytes struct{ Value UnstructuredBytesMetadata }
)

func (MetadataUndefined) Kind() MetadataKind         { return MetadataKindUndefined }
func (MetadataGeneral) Kind() MetadataKind           { return MetadataKindGeneral }
func (MetadataTravelRule) Kind() MetadataKind        { return MetadataKindTravelRule }
func (MetadataUnstructuredBytes) Kind() MetadataKind { return MetadataKindUnstructuredBytes }

func (MetadataUndefined) isMetadata()         {}
func (MetadataGeneral) isMetadata()           {}
func (MetadataTravelRule) isMetadata()        {}
func (MetadataUnstructuredBytes) isMetadata() {}

func (m MetadataUndefined) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), nil)
}

func (m MetadataGeneral) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), m.Value.MarshalLCS)
}

func (m MetadataTravelRule) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), m.Value.MarshalLCS)
}

func (m MetadataUnstructuredBytes) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), m.Value.MarshalLCS)
}

var metadata = lcs.NewUnion("Metadata", []lcs.DecodeFunc[Metadata]{
	MetadataKindUndefined: func(*lcs.Deserializer) (Metadata, error) { return MetadataUndefined{}, nil },
	MetadataKindGeneral: func(d *lcs.Deserializer) (Metadata, error) {
		v, err := DecodeGeneralMetadata(d)
		if err != nil {
			return nil, err
		}
		return MetadataGeneral{Value: v}, nil
	},
	MetadataKindTravelRule: func(d *lcs.Deserializer) (Metadata, error) {
		v, err := DecodeTravelRuleMetadata(d)
		if err != nil {
			return nil, err
		}
		return MetadataTravelRule{Value: v}, nil
	},
	MetadataKindUnstructuredBytes: func(d *lcs.Deserializer) (Metadata, error) {
		v, err := DecodeUnstructuredBytesMetadata(d)
		if err != nil {
			return nil, err
		}
		return MetadataUnstructuredBytes{Value: v}, nil
	},
})

// DecodeMetadata reads a Metadata.
func DecodeMetadata(d *lcs.Deserializer) (Metadata, error) {
	return metadata.Deserialize(d)
}

// GeneralMetadataKind is the discriminant of a GeneralMetadata.
type GeneralMetadataKind uint32

const (
	GeneralMetadataKindV0 GeneralMetadataKind = iota
)

// GeneralMetadata is versioned subaddress metadata.
type GeneralMetadata interface {
	lcs.Marshaler
	Kind() GeneralMetadataKind
	isGeneralMetadata()
}

// GeneralMetadataVersion0 wraps a GeneralMetadataV0.
type GeneralMetadataVersion0 struct {
	Value GeneralMetadataV0
}

func (GeneralMetadataVersion0) Kind() GeneralMetadataKind { return GeneralMetadataKindV0 }
func (GeneralMetadataVersion0) isGeneralMetadata()        {}

func (m GeneralMetadataVersion0) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), m.Value.MarshalLCS)
}

var generalMetadata = lcs.NewUnion("GeneralMetadata", []lcs.DecodeFunc[GeneralMetadata]{
	GeneralMetadataKindV0: func(d *lcs.Deserializer) (GeneralMetadata, error) {
		v, err := DecodeGeneralMetadataV0(d)
		if err != nil {
			return nil, err
		}
		return GeneralMetadataVersion0{Value: v}, nil
	},
})

// DecodeGeneralMetadata reads a GeneralMetadata.
func DecodeGeneralMetadata(d *lcs.Deserializer) (GeneralMetadata, error) {
	return generalMetadata.Deserialize(d)
}

// GeneralMetadataV0 names the sending and receiving subaddresses, and
// for refunds the event being refunded. Nil means absent; a non-nil
// pointer to an empty slice is a present, empty subaddress.
type GeneralMetadataV0 struct {
	ToSubaddress    *[]byte
	FromSubaddress  *[]byte
	ReferencedEvent *uint64
}

func (m GeneralMetadataV0) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeOption(s, m.ToSubaddress, lcs.EncodeBytes)
	lcs.SerializeOption(s, m.FromSubaddress, lcs.EncodeBytes)
	lcs.SerializeOption(s, m.ReferencedEvent, lcs.EncodeU64)
}

// DecodeGeneralMetadataV0 reads a GeneralMetadataV0.
func DecodeGeneralMetadataV0(d *lcs.Deserializer) (GeneralMetadataV0, error) {
	to, err := lcs.DeserializeOption(d, lcs.DecodeBytes)
	if err != nil {
		return GeneralMetadataV0{}, err
	}
	from, err := lcs.DeserializeOption(d, lcs.DecodeBytes)
	if err != nil {
		return GeneralMetadataV0{}, err
	}
	ref, err := lcs.DeserializeOption(d, lcs.DecodeU64)
	if err != nil {
		return GeneralMetadataV0{}, err
	}
	return GeneralMetadataV0{ToSubaddress: to, FromSubaddress: from, ReferencedEvent: ref}, nil
}

// TravelRuleMetadataKind is the discriminant of a TravelRuleMetadata.
type TravelRuleMetadataKind uint32

const (
	TravelRuleMetadataKindV0 TravelRuleMetadataKind = iota
)

// TravelRuleMetadata is versioned travel rule metadata.
type TravelRuleMetadata interface {
	lcs.Marshaler
	Kind() TravelRuleMetadataKind
	isTravelRuleMetadata()
}

// TravelRuleMetadataVersion0 wraps a TravelRuleMetadataV0.
type TravelRuleMetadataVersion0 struct {
	Value TravelRuleMetadataV0
}

func (TravelRuleMetadataVersion0) Kind() TravelRuleMetadataKind { return TravelRuleMetadataKindV0 }
func (TravelRuleMetadataVersion0) isTravelRuleMetadata()        {}

func (m TravelRuleMetadataVersion0) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(m.Kind()), m.Value.MarshalLCS)
}

var travelRuleMetadata = lcs.NewUnion("TravelRuleMetadata", []lcs.DecodeFunc[TravelRuleMetadata]{
	TravelRuleMetadataKindV0: func(d *lcs.Deserializer) (TravelRuleMetadata, error) {
		v, err := DecodeTravelRuleMetadataV0(d)
		if err != nil {
			return nil, err
		}
		return TravelRuleMetadataVersion0{Value: v}, nil
	},
})

// DecodeTravelRuleMetadata reads a TravelRuleMetadata.
func DecodeTravelRuleMetadata(d *lcs.Deserializer) (TravelRuleMetadata, error) {
	return travelRuleMetadata.Deserialize(d)
}

// TravelRuleMetadataV0 carries the off-chain reference agreed by the
// two VASPs.
type TravelRuleMetadataV0 struct {
	OffChainReferenceID *string
}

func (m TravelRuleMetadataV0) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeOption(s, m.OffChainReferenceID, lcs.EncodeStr)
}

// DecodeTravelRuleMetadataV0 reads a TravelRuleMetadataV0.
func DecodeTravelRuleMetadataV0(d *lcs.Deserializer) (TravelRuleMetadataV0, error) {
	id, err := lcs.DeserializeOption(d, lcs.DecodeStr)
	if err != nil {
		return TravelRuleMetadataV0{}, err
	}
	return TravelRuleMetadataV0{OffChainReferenceID: id}, nil
}

// UnstructuredBytesMetadata is opaque metadata.
type UnstructuredBytesMetadata struct {
	Metadata *[]byte
}

func (m UnstructuredBytesMetadata) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeOption(s, m.Metadata, lcs.EncodeBytes)
}

// DecodeUnstructuredBytesMetadata reads an UnstructuredBytesMetadata.
func DecodeUnstructuredBytesMetadata(d *lcs.Deserializer) (UnstructuredBytesMetadata, error) {
	b, err := lcs.DeserializeOption(d, lcs.DecodeBytes)
	if err != nil {
		return UnstructuredBytesMetadata{}, err
	}
	return UnstructuredBytesMetadata{Metadata: b}, nil
}
