package lcs

// MaxSequenceLength is the largest length or count the format allows.
const MaxSequenceLength = 1<<31 - 1

// MaxContainerDepth is the default ceiling on nested union decoding.
const MaxContainerDepth = 500

// Limits bounds the resources a single decode may claim.
type Limits struct {
	// MaxSequenceLength caps every decoded length prefix (sequences,
	// byte strings, text). Must not exceed the package constant.
	MaxSequenceLength int

	// MaxContainerDepth caps how deeply tagged unions may nest.
	MaxContainerDepth int
}

// DefaultLimits are the limits used by Deserialize and Unmarshal.
var DefaultLimits = Limits{
	MaxSequenceLength: MaxSequenceLength,
	MaxContainerDepth: MaxContainerDepth,
}

// normalize replaces unset or out-of-range fields with defaults.
func (l Limits) normalize() Limits {
	if l.MaxSequenceLength <= 0 || l.MaxSequenceLength > MaxSequenceLength {
		l.MaxSequenceLength = MaxSequenceLength
	}
	if l.MaxContainerDepth <= 0 {
		l.MaxContainerDepth = MaxContainerDepth
	}
	return l
}
