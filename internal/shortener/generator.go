package shortener

import "github.com/jaevor/go-nanoid"

// Alphabet is the character pool for short codes: uppercase letters minus
// the easily-confused G, lowercase letters, and digits (61 characters).
const Alphabet = "ABCDEFHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// DefaultCodeLength is the length of generated codes. With the 61-char
// alphabet this gives roughly 5.1e10 possible codes.
const DefaultCodeLength = 6

// CodeGenerator produces a uniform random short code on each call.
type CodeGenerator func() Code

// NewCodeGenerator builds a generator for codes of the given length over
// Alphabet. Calls are independent; the generator keeps no state beyond
// its entropy buffer.
func NewCodeGenerator(length int) (CodeGenerator, error) {
	gen, err := nanoid.CustomASCII(Alphabet, length)
	if err != nil {
		return nil, err
	}

	return func() Code { return Code(gen()) }, nil
}
