package codec

// Codec turns a complete in-memory buffer into its text form and back.
// Implementations hold no mutable state and may be shared between goroutines.
type Codec interface {
	Name() string
	Encode(src []byte) ([]byte, error)
	Decode(src []byte) ([]byte, error)
}

const invalidSymbol = 0xFF

// isSpace follows the C locale isspace set.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
