package lcstest

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockberries/ledgertypes/lcs"
)

// RunCanonicalSuite checks the canonical-form properties of one value
// and its decoder: round trip, rejection of trailing bytes and of every
// truncated prefix, and that no single-byte mutation decodes to a value
// with a different encoding.
//
// v must not contain empty non-nil slices, which decode as nil.
func RunCanonicalSuite[T lcs.Marshaler](t *testing.T, v T, dec lcs.DecodeFunc[T]) {
	t.Helper()
	h := NewHarness(t, dec)
	enc := h.Encode(v)
	require.NotEmpty(t, enc)

	t.Run("round_trip", func(t *testing.T) {
		NewHarness(t, dec).RoundTrip(v)
	})

	t.Run("deterministic", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			require.Equal(t, enc, lcs.Marshal(v))
		}
	})

	t.Run("trailing_bytes", func(t *testing.T) {
		h := NewHarness(t, dec)
		for _, extra := range []byte{0x00, 0x01, 0xff} {
			data := append(append([]byte(nil), enc...), extra)
			de := h.MustReject(data, lcs.ErrTrailingData)
			assert.Equal(t, len(enc), de.Offset)
		}
	})

	t.Run("truncated_prefixes", func(t *testing.T) {
		h := NewHarness(t, dec)
		for i := 0; i < len(enc); i++ {
			h.MustReject(enc[:i], lcs.ErrTruncatedInput)
		}
	})

	t.Run("single_byte_mutation", func(t *testing.T) {
		for i := range enc {
			for _, mask := range []byte{0x01, 0x80, 0xff} {
				data := append([]byte(nil), enc...)
				data[i] ^= mask
				got, err := lcs.Deserialize(data, dec)
				if err != nil {
					continue
				}
				// Whatever decodes must be the unique encoding of itself.
				assert.Equal(t, data, lcs.Marshal(got), "byte %d mask %#02x", i, mask)
			}
		}
	})

	t.Run("concurrent_decode", func(t *testing.T) {
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := lcs.Deserialize(enc, dec)
				if !assert.NoError(t, err) {
					return
				}
				assert.Equal(t, enc, lcs.Marshal(got))
			}()
		}
		wg.Wait()
	})
}
