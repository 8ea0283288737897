package codec

import (
	"fmt"
	"math"
)

const (
	Base16Name            = "base16"
	DefaultBase16Alphabet = "0123456789ABCDEF"
	base16AlphabetLen     = 16
)

var StdBase16 = MustNewBase16(DefaultBase16Alphabet)

// Base16 is a hex codec bound to a 16 character alphabet.
type Base16 struct {
	encodeTab [base16AlphabetLen]byte
	decodeTab [256]byte
	lenient   bool
}

type Base16Option func(*Base16)

// WithLenientDecode makes Decode map characters outside the alphabet to 0 and
// drop a trailing odd character instead of failing.
func WithLenientDecode() Base16Option {
	return func(b *Base16) {
		b.lenient = true
	}
}

// NewBase16 binds the first 16 bytes of alphabet to a new codec.
func NewBase16(alphabet string, opts ...Base16Option) (*Base16, error) {
	if len(alphabet) < base16AlphabetLen {
		return nil, fmt.Errorf("%w: base16 alphabet needs %d characters, got %d", ErrInvalidArgument, base16AlphabetLen, len(alphabet))
	}

	b := &Base16{}
	for i := range b.decodeTab {
		b.decodeTab[i] = invalidSymbol
	}
	for i := 0; i < base16AlphabetLen; i++ {
		c := alphabet[i]
		if b.decodeTab[c] != invalidSymbol {
			return nil, fmt.Errorf("%w: base16 alphabet repeats %q", ErrInvalidArgument, c)
		}
		b.encodeTab[i] = c
		b.decodeTab[c] = byte(i)
	}

	for _, opt := range opts {
		opt(b)
	}
	return b, nil
}

func MustNewBase16(alphabet string, opts ...Base16Option) *Base16 {
	b, err := NewBase16(alphabet, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Base16) Name() string {
	return Base16Name
}

func (b *Base16) Alphabet() string {
	return string(b.encodeTab[:])
}

func (b *Base16) Lenient() bool {
	return b.lenient
}

func (b *Base16) Encode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: nothing to encode", ErrInvalidArgument)
	}
	if len(src) > math.MaxInt/2 {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationFailure, len(src))
	}

	dst := make([]byte, len(src)*2)
	for i, v := range src {
		dst[i*2] = b.encodeTab[v>>4]
		dst[i*2+1] = b.encodeTab[v&0x0F]
	}
	return dst, nil
}

func (b *Base16) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return nil, fmt.Errorf("%w: nothing to decode", ErrInvalidArgument)
	}
	if !b.lenient && len(src)%2 == 1 {
		return nil, corrupt(Base16Name, len(src)-1, "odd number of characters")
	}

	dst := make([]byte, len(src)/2)
	for i := range dst {
		hi, err := b.lookup(src, i*2)
		if err != nil {
			return nil, err
		}
		lo, err := b.lookup(src, i*2+1)
		if err != nil {
			return nil, err
		}
		dst[i] = hi<<4 | lo
	}
	return dst, nil
}

func (b *Base16) lookup(src []byte, offset int) (byte, error) {
	v := b.decodeTab[src[offset]]
	if v != invalidSymbol {
		return v, nil
	}
	if b.lenient {
		return 0, nil
	}
	return 0, corrupt(Base16Name, offset, "character %q is not in the alphabet", src[offset])
}
