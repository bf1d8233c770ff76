package types

import "github.com/blockberries/ledgertypes/lcs"

// Ed25519PublicKey is a serialized Ed25519 public key.
type Ed25519PublicKey []byte

// Ed25519Signature is a serialized Ed25519 signature.
type Ed25519Signature []byte

// MultiEd25519PublicKey is a serialized K-of-N Ed25519 public key.
type MultiEd25519PublicKey []byte

// MultiEd25519Signature is a serialized K-of-N Ed25519 signature.
type MultiEd25519Signature []byte

func (k Ed25519PublicKey) MarshalLCS(s *lcs.Serializer)      { s.SerializeBytes(k) }
func (k Ed25519Signature) MarshalLCS(s *lcs.Serializer)      { s.SerializeBytes(k) }
func (k MultiEd25519PublicKey) MarshalLCS(s *lcs.Serializer) { s.SerializeBytes(k) }
func (k MultiEd25519Signature) MarshalLCS(s *lcs.Serializer) { s.SerializeBytes(k) }

// DecodeEd25519PublicKey reads an Ed25519PublicKey.
func DecodeEd25519PublicKey(d *lcs.Deserializer) (Ed25519PublicKey, error) {
	b, err := d.DeserializeBytes()
	return Ed25519PublicKey(b), err
}

// DecodeEd25519Signature reads an Ed25519Signature.
func DecodeEd25519Signature(d *lcs.Deserializer) (Ed25519Signature, error) {
	b, err := d.DeserializeBytes()
	return Ed25519Signature(b), err
}

// DecodeMultiEd25519PublicKey reads a MultiEd25519PublicKey.
func DecodeMultiEd25519PublicKey(d *lcs.Deserializer) (MultiEd25519PublicKey, error) {
	b, err := d.DeserializeBytes()
	return MultiEd25519PublicKey(b), err
}

// DecodeMultiEd25519Signature reads a MultiEd25519Signature.
func DecodeMultiEd25519Signature(d *lcs.Deserializer) (MultiEd25519Signature, error) {
	b, err := d.DeserializeBytes()
	return MultiEd25519Signature(b), err
}

// AuthenticatorKind is the discriminant of a TransactionAuthenticator.
type AuthenticatorKind uint32

const (
	AuthenticatorKindEd25519 AuthenticatorKind = iota
	AuthenticatorKindMultiEd25519
)

// TransactionAuthenticator proves the sender authorized a transaction.
type TransactionAuthenticator interface {
	lcs.Marshaler
	Kind() AuthenticatorKind
	isTransactionAuthenticator()
}

// Ed25519Authenticator is a single-signer authenticator.
type Ed25519Authenticator struct {
	PublicKey Ed25519PublicKey
	Signature Ed25519Signature
}

// MultiEd25519Authenticator is a K-of-N multisig authenticator.
type MultiEd25519Authenticator struct {
	PublicKey MultiEd25519PublicKey
	Signature MultiEd25519Signature
}

func (Ed25519Authenticator) Kind() AuthenticatorKind      { return AuthenticatorKindEd25519 }
func (MultiEd25519Authenticator) Kind() AuthenticatorKind { return AuthenticatorKindMultiEd25519 }

func (Ed25519Authenticator) isTransactionAuthenticator()      {}
func (MultiEd25519Authenticator) isTransactionAuthenticator() {}

func (a Ed25519Authenticator) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(a.Kind()), func(s *lcs.Serializer) {
		a.PublicKey.MarshalLCS(s)
		a.Signature.MarshalLCS(s)
	})
}

func (a MultiEd25519Authenticator) MarshalLCS(s *lcs.Serializer) {
	lcs.SerializeVariant(s, uint32(a.Kind()), func(s *lcs.Serializer) {
		a.PublicKey.MarshalLCS(s)
		a.Signature.MarshalLCS(s)
	})
}

var authenticators = lcs.NewUnion("TransactionAuthenticator", []lcs.DecodeFunc[TransactionAuthenticator]{
	AuthenticatorKindEd25519: func(d *lcs.Deserializer) (TransactionAuthenticator, error) {
		pk, err := DecodeEd25519PublicKey(d)
		if err != nil {
			return nil, err
		}
		sig, err := DecodeEd25519Signature(d)
		if err != nil {
			return nil, err
		}
		return Ed25519Authenticator{PublicKey: pk, Signature: sig}, nil
	},
	AuthenticatorKindMultiEd25519: func(d *lcs.Deserializer) (TransactionAuthenticator, error) {
		pk, err := DecodeMultiEd25519PublicKey(d)
		if err != nil {
			return nil, err
		}
		sig, err := DecodeMultiEd25519Signature(d)
		if err != nil {
			return nil, err
		}
		return MultiEd25519Authenticator{PublicKey: pk, Signature: sig}, nil
	},
})

// DecodeTransactionAuthenticator reads a TransactionAuthenticator.
func DecodeTransactionAuthenticator(d *lcs.Deserializer) (TransactionAuthenticator, error) {
	return authenticators.Deserialize(d)
}
