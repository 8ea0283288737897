package codec

import (
	"fmt"
	"math"
)

const (
	Base64Name     = "base64"
	Base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	Base64Pad      = '='

	maxBase64Src = math.MaxInt / 4 * 3
)

var base64DecodeTab = func() (dec [256]byte) {
	for i := range dec {
		dec[i] = invalidSymbol
	}
	for i := 0; i < len(Base64Alphabet); i++ {
		dec[Base64Alphabet[i]] = byte(i)
	}
	return dec
}()

// Base64EncodedLen is the exact length of the padded encoding of n bytes.
func Base64EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// Base64DecodedLen is the largest number of bytes n encoded characters can hold.
func Base64DecodedLen(n int) int {
	return (n + 3) / 4 * 3
}

// Base64Encode writes the padded encoding of src into dst and returns the
// number of characters written. dst is left untouched when it is too small.
func Base64Encode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: nothing to encode", ErrInvalidArgument)
	}
	if len(src) > maxBase64Src {
		return 0, fmt.Errorf("%w: %d bytes", ErrAllocationFailure, len(src))
	}
	if need := Base64EncodedLen(len(src)); need > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrCapacityExceeded, need, len(dst))
	}

	n := 0
	for len(src) > 2 {
		dst[n] = Base64Alphabet[src[0]>>2]
		dst[n+1] = Base64Alphabet[(src[0]&0x03)<<4|src[1]>>4]
		dst[n+2] = Base64Alphabet[(src[1]&0x0f)<<2|src[2]>>6]
		dst[n+3] = Base64Alphabet[src[2]&0x3f]
		src = src[3:]
		n += 4
	}

	if len(src) == 0 {
		return n, nil
	}

	var tail [3]byte
	copy(tail[:], src)
	dst[n] = Base64Alphabet[tail[0]>>2]
	dst[n+1] = Base64Alphabet[(tail[0]&0x03)<<4|tail[1]>>4]
	if len(src) == 1 {
		dst[n+2] = Base64Pad
	} else {
		dst[n+2] = Base64Alphabet[(tail[1]&0x0f)<<2|tail[2]>>6]
	}
	dst[n+3] = Base64Pad
	return n + 4, nil
}

// Base64Decode decodes src into dst and returns the number of bytes written.
// Whitespace is skipped anywhere, padding and slack bits are checked strictly.
// dst is only written to once the whole input is known to be valid and to fit.
func Base64Decode(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, fmt.Errorf("%w: nothing to decode", ErrInvalidArgument)
	}
	if _, err := base64Decode(nil, src, len(dst)); err != nil {
		return 0, err
	}
	return base64Decode(dst, src, len(dst))
}

// base64Decode runs the decode automaton. With a nil dst it only validates
// and counts against capacity.
func base64Decode(dst, src []byte, capacity int) (int, error) {
	var (
		state    int
		n        int
		carry    byte
		i        int
		lastData int
	)

	put := func(v byte) {
		if dst != nil {
			dst[n] = v
		}
	}
	overflow := func() error {
		return fmt.Errorf("%w: decoded data exceeds %d bytes", ErrCapacityExceeded, capacity)
	}

	for ; i < len(src); i++ {
		c := src[i]
		if isSpace(c) {
			continue
		}
		if c == Base64Pad {
			break
		}

		v := base64DecodeTab[c]
		if v == invalidSymbol {
			return 0, corrupt(Base64Name, i, "character %q is not in the alphabet", c)
		}
		lastData = i

		if n >= capacity {
			return 0, overflow()
		}
		switch state {
		case 0:
			carry = v << 2
			state = 1
		case 1:
			put(carry | v>>4)
			carry = (v & 0x0f) << 4
			// a carry landing exactly on capacity is fine as long as it holds no bits
			if n+1 >= capacity && carry != 0 {
				return 0, overflow()
			}
			n++
			state = 2
		case 2:
			put(carry | v>>2)
			carry = (v & 0x03) << 6
			if n+1 >= capacity && carry != 0 {
				return 0, overflow()
			}
			n++
			state = 3
		case 3:
			put(carry | v)
			carry = 0
			n++
			state = 0
		}
	}

	if i == len(src) {
		if state != 0 {
			return 0, corrupt(Base64Name, len(src), "input ends inside a %d character group", state)
		}
		return n, nil
	}

	switch state {
	case 0, 1:
		return 0, corrupt(Base64Name, i, "padding after %d characters of a group", state)
	case 2:
		for i++; i < len(src) && isSpace(src[i]); i++ {
		}
		if i == len(src) || src[i] != Base64Pad {
			return 0, corrupt(Base64Name, i, "expected a second padding character")
		}
	}

	for i++; i < len(src); i++ {
		if !isSpace(src[i]) {
			return 0, corrupt(Base64Name, i, "unexpected %q after padding", src[i])
		}
	}

	if carry != 0 {
		return 0, corrupt(Base64Name, lastData, "non-zero slack bits in final character")
	}
	return n, nil
}

// Base64 adapts Base64Encode and Base64Decode to the allocating Codec interface.
type Base64 struct{}

var StdBase64 Base64

func (Base64) Name() string {
	return Base64Name
}

func (Base64) Encode(src []byte) ([]byte, error) {
	if len(src) > maxBase64Src {
		return nil, fmt.Errorf("%w: %d bytes", ErrAllocationFailure, len(src))
	}
	dst := make([]byte, Base64EncodedLen(len(src)))
	n, err := Base64Encode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

func (Base64) Decode(src []byte) ([]byte, error) {
	dst := make([]byte, Base64DecodedLen(len(src)))
	n, err := Base64Decode(dst, src)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}
