package types

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/blockberries/ledgertypes/lcs"
)

// ErrUnknownType is returned when a type name is not in the registry.
var ErrUnknownType = errors.New("unknown type")

// Decoder strictly decodes a complete encoding of one catalog type.
type Decoder func(data []byte, limits lcs.Limits) (lcs.Marshaler, error)

func strict[T lcs.Marshaler](dec lcs.DecodeFunc[T]) Decoder {
	return func(data []byte, limits lcs.Limits) (lcs.Marshaler, error) {
		v, err := lcs.DeserializeWithLimits(data, limits, dec)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
}

// registry is never written after initialization.
var registry = map[string]Decoder{
	"AccessPath":                strict(DecodeAccessPath),
	"AccountAddress":            strict(DecodeAccountAddress),
	"BlockMetadata":             strict(DecodeBlockMetadata),
	"ChainID":                   strict(DecodeChainID),
	"ChangeSet":                 strict(DecodeChangeSet),
	"ContractEvent":             strict(DecodeContractEvent),
	"ContractEventV0":           strict(DecodeContractEventV0),
	"Ed25519PublicKey":          strict(DecodeEd25519PublicKey),
	"Ed25519Signature":          strict(DecodeEd25519Signature),
	"EventKey":                  strict(DecodeEventKey),
	"GeneralMetadata":           strict(DecodeGeneralMetadata),
	"GeneralMetadataV0":         strict(DecodeGeneralMetadataV0),
	"HashValue":                 strict(DecodeHashValue),
	"Identifier":                strict(DecodeIdentifier),
	"Metadata":                  strict(DecodeMetadata),
	"Module":                    strict(DecodeModule),
	"MultiEd25519PublicKey":     strict(DecodeMultiEd25519PublicKey),
	"MultiEd25519Signature":     strict(DecodeMultiEd25519Signature),
	"RawTransaction":            strict(DecodeRawTransaction),
	"Script":                    strict(DecodeScript),
	"SignedTransaction":         strict(DecodeSignedTransaction),
	"StructTag":                 strict(DecodeStructTag),
	"Transaction":               strict(DecodeTransaction),
	"TransactionArgument":       strict(DecodeTransactionArgument),
	"TransactionAuthenticator":  strict(DecodeTransactionAuthenticator),
	"TransactionPayload":        strict(DecodeTransactionPayload),
	"TravelRuleMetadata":        strict(DecodeTravelRuleMetadata),
	"TravelRuleMetadataV0":      strict(DecodeTravelRuleMetadataV0),
	"TypeTag":                   strict(DecodeTypeTag),
	"UnstructuredBytesMetadata": strict(DecodeUnstructuredBytesMetadata),
	"WriteOp":                   strict(DecodeWriteOp),
	"WriteSet":                  strict(DecodeWriteSet),
	"WriteSetMut":               strict(DecodeWriteSetMut),
	"WriteSetPayload":           strict(DecodeWriteSetPayload),
}

// Names returns every registered type name in sorted order.
func Names() []string {
	return slices.Sorted(maps.Keys(registry))
}

// Lookup returns the decoder registered under name.
func Lookup(name string) (Decoder, error) {
	dec, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
	return dec, nil
}

// Decode strictly decodes data as the named type.
func Decode(name string, data []byte, limits lcs.Limits) (lcs.Marshaler, error) {
	dec, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return dec(data, limits)
}
