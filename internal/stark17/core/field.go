// Package core implements the finite-field, polynomial, and Merkle-tree
// primitives the STARK protocol is built from.
package core

import (
	"fmt"
	"math/big"
)

// Field represents a prime field Z/pZ with modular arithmetic operations.
type Field struct {
	modulus *big.Int
}

// FieldElement represents an element of a Field.
type FieldElement struct {
	field *Field
	value *big.Int
}

// NewField creates a new prime field with the given modulus.
func NewField(modulus *big.Int) (*Field, error) {
	if modulus.Cmp(big.NewInt(2)) <= 0 {
		return nil, fmt.Errorf("modulus must be greater than 2")
	}
	return &Field{modulus: new(big.Int).Set(modulus)}, nil
}

// NewFieldFromUint64 creates a new prime field from a uint64 modulus.
func NewFieldFromUint64(modulus uint64) (*Field, error) {
	return NewField(new(big.Int).SetUint64(modulus))
}

// Modulus returns the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// Equals reports whether two fields share the same modulus.
func (f *Field) Equals(other *Field) bool {
	return f.modulus.Cmp(other.modulus) == 0
}

// NewElement creates a field element from a big.Int, reducing mod p.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: normalized}
}

// NewElementFromInt64 creates a field element from an int64.
func (f *Field) NewElementFromInt64(value int64) *FieldElement {
	return f.NewElement(big.NewInt(value))
}

// NewElementFromUint64 creates a field element from a uint64.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement {
	return f.NewElementFromInt64(0)
}

// One returns the multiplicative identity.
func (f *Field) One() *FieldElement {
	return f.NewElementFromInt64(1)
}

// Field returns the field this element belongs to.
func (fe *FieldElement) Field() *Field {
	return fe.field
}

// Big returns the element's value as a big.Int.
func (fe *FieldElement) Big() *big.Int {
	return new(big.Int).Set(fe.value)
}

// Uint64 returns the element's value as a uint64. Safe because the
// hardcoded modulus (17) never exceeds a byte.
func (fe *FieldElement) Uint64() uint64 {
	return fe.value.Uint64()
}

// Add performs field addition.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot add elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Add(fe.value, other.value))
}

// Sub performs field subtraction.
func (fe *FieldElement) Sub(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot subtract elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Sub(fe.value, other.value))
}

// Neg returns the additive inverse: (p - a) mod p.
func (fe *FieldElement) Neg() *FieldElement {
	return fe.field.NewElement(new(big.Int).Neg(fe.value))
}

// Mul performs field multiplication.
func (fe *FieldElement) Mul(other *FieldElement) *FieldElement {
	if !fe.field.Equals(other.field) {
		panic("cannot multiply elements from different fields")
	}
	return fe.field.NewElement(new(big.Int).Mul(fe.value, other.value))
}

// Square returns fe*fe.
func (fe *FieldElement) Square() *FieldElement {
	return fe.Mul(fe)
}

// Inv computes the multiplicative inverse via Fermat's little theorem:
// a^-1 = a^(p-2). Fails for a = 0.
func (fe *FieldElement) Inv() (*FieldElement, error) {
	if fe.IsZero() {
		return nil, &ZeroInversionError{}
	}
	exp := new(big.Int).Sub(fe.field.modulus, big.NewInt(2))
	return fe.Exp(exp), nil
}

// Div performs field division (multiplication by the inverse).
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if !fe.field.Equals(other.field) {
		return nil, fmt.Errorf("cannot divide elements from different fields")
	}
	inv, err := other.Inv()
	if err != nil {
		return nil, fmt.Errorf("division failed: %w", err)
	}
	return fe.Mul(inv), nil
}

// Exp performs exponentiation by squaring for an arbitrary integer exponent.
func (fe *FieldElement) Exp(exponent *big.Int) *FieldElement {
	result := new(big.Int).Exp(fe.value, exponent, fe.field.modulus)
	return fe.field.NewElement(result)
}

// Pow is a convenience wrapper over Exp for small, non-negative exponents.
func (fe *FieldElement) Pow(exponent uint64) *FieldElement {
	return fe.Exp(new(big.Int).SetUint64(exponent))
}

// Equal reports whether two elements (from the same field) are equal.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	if !fe.field.Equals(other.field) {
		return false
	}
	return fe.value.Cmp(other.value) == 0
}

// IsZero reports whether the element is the additive identity.
func (fe *FieldElement) IsZero() bool {
	return fe.value.Sign() == 0
}

// IsOne reports whether the element is the multiplicative identity.
func (fe *FieldElement) IsOne() bool {
	return fe.value.Cmp(big.NewInt(1)) == 0
}

// String returns the decimal representation of the element's value.
func (fe *FieldElement) String() string {
	return fe.value.String()
}

// Bytes returns the single-byte big-endian encoding used throughout this
// package: every element fits in {0,...,16}, so one byte always suffices.
func (fe *FieldElement) Bytes() []byte {
	return []byte{byte(fe.value.Uint64())}
}

// LogG returns the unique k in {0,...,ord(g)-1} such that g^k == fe,
// found by brute-force scan. Fails for fe = 0, since 0 has no discrete
// log with respect to a generator of the multiplicative group.
//
// This is a brute-force scan appropriate only for the tiny, hardcoded
// multiplicative group this package targets (|F*| = 16): it is not a
// general discrete-log solver.
func (fe *FieldElement) LogG(g *FieldElement) (uint64, error) {
	if fe.IsZero() {
		return 0, fmt.Errorf("zero has no discrete logarithm")
	}
	order := new(big.Int).Sub(fe.field.modulus, big.NewInt(1)).Uint64()
	acc := fe.field.One()
	for k := uint64(0); k < order; k++ {
		if acc.Equal(fe) {
			return k, nil
		}
		acc = acc.Mul(g)
	}
	return 0, fmt.Errorf("value %s is not in the subgroup generated by %s", fe, g)
}

// Stark17Modulus is the fixed prime p = 17 spec.md's field is built on.
const Stark17Modulus = 17

// Stark17Generator is the fixed primitive root g_field = 3 of F17*.
const Stark17Generator = 3

// NewStark17Field returns the hardcoded F17 field used throughout this
// module's STARK engine.
func NewStark17Field() *Field {
	f, err := NewFieldFromUint64(Stark17Modulus)
	if err != nil {
		// Unreachable: Stark17Modulus is a compile-time constant > 2.
		panic(err)
	}
	return f
}

// Generator returns the fixed generator g_field = 3 as an element of f.
func Generator(f *Field) *FieldElement {
	return f.NewElementFromInt64(Stark17Generator)
}
