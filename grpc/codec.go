// Package ledgergrpc carries ledger records over gRPC.
//
// No protobuf code generation is required. Ledger records travel in
// their canonical lcs encoding; transport-only wrapper messages, which
// have no canonical form, are serialized with cramberry.
package ledgergrpc

import (
	"fmt"

	"github.com/blockberries/cramberry/pkg/cramberry"
	"google.golang.org/grpc/encoding"

	"github.com/blockberries/ledgertypes/lcs"
)

const codecName = "lcs"

// Codec implements grpc/encoding.Codec. Messages implementing
// lcs.Marshaler and lcs.Unmarshaler use the strict lcs codec; anything
// else falls back to cramberry.
type Codec struct {
	// Limits bounds lcs decoding. The zero value uses lcs.DefaultLimits.
	Limits lcs.Limits
}

func (Codec) Marshal(v any) ([]byte, error) {
	if m, ok := v.(lcs.Marshaler); ok {
		data, err := lcs.MarshalChecked(m)
		if err != nil {
			return nil, fmt.Errorf("lcs marshal %T: %w", v, err)
		}
		return data, nil
	}
	data, err := cramberry.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("cramberry marshal: %w", err)
	}
	return data, nil
}

func (c Codec) Unmarshal(data []byte, v any) error {
	if u, ok := v.(lcs.Unmarshaler); ok {
		d := lcs.NewDeserializerWithLimits(data, c.Limits)
		if err := u.UnmarshalLCS(d); err != nil {
			return fmt.Errorf("lcs unmarshal %T: %w", v, err)
		}
		if err := d.CheckFinished(); err != nil {
			return fmt.Errorf("lcs unmarshal %T: %w", v, err)
		}
		return nil
	}
	if err := cramberry.Unmarshal(data, v); err != nil {
		return fmt.Errorf("cramberry unmarshal: %w", err)
	}
	return nil
}

func (Codec) Name() string { return codecName }

func init() {
	encoding.RegisterCodec(Codec{})
}
