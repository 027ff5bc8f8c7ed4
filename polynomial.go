package psmt

import (
    "math/big"
)

// SetPolynomial holds the coefficients a_0..a_n of the monic polynomial
// whose root set is a server dataset, over the plaintext ring Z/modulus.
type SetPolynomial struct {
    coefficients []*big.Int
    modulus      *big.Int
}

// NewSetPolynomial expands prod (x - s_i) over Z/modulus by multiplying
// a running polynomial with one linear factor per root. The result
// depends only on the set of roots, not their order. An empty root set
// yields the constant polynomial 1, which has no roots at all.
func NewSetPolynomial(roots []*big.Int, modulus *big.Int) *SetPolynomial {
    coeffs := []*big.Int{big.NewInt(1)}
    for _, root := range roots {
        r := new(big.Int).Mod(root, modulus)
        next := make([]*big.Int, len(coeffs)+1)
        for i := range next {
            next[i] = big.NewInt(0)
        }
        for i, c := range coeffs {
            next[i+1].Add(next[i+1], c)
            t := new(big.Int).Mul(c, r)
            next[i].Sub(next[i], t)
            next[i].Mod(next[i], modulus)
        }
        next[len(coeffs)].Mod(next[len(coeffs)], modulus)
        coeffs = next
    }
    return &SetPolynomial{coefficients: coeffs, modulus: modulus}
}

// Degree is the number of roots the polynomial was built from.
func (p *SetPolynomial) Degree() int {
    return len(p.coefficients) - 1
}

// Coefficient returns a_i, reduced into [0, modulus).
func (p *SetPolynomial) Coefficient(i int) *big.Int {
    return new(big.Int).Set(p.coefficients[i])
}

// Eval evaluates the polynomial at x over Z/modulus by Horner's method.
func (p *SetPolynomial) Eval(x *big.Int) *big.Int {
    xm := new(big.Int).Mod(x, p.modulus)
    acc := new(big.Int).Set(p.coefficients[len(p.coefficients)-1])
    for i := len(p.coefficients) - 2; i >= 0; i -= 1 {
        acc.Mul(acc, xm)
        acc.Add(acc, p.coefficients[i])
        acc.Mod(acc, p.modulus)
    }
    return acc
}
