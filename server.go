package psmt

import (
    "fmt"
    "math/big"
)

// Server holds the private dataset encoded as a set polynomial and the
// public side of the client's cryptosystem. It can evaluate and blind,
// but never decrypt.
type Server struct {
    cs   Cryptosystem
    poly *SetPolynomial
    size int
}

// NewServer reduces the dataset into the plaintext ring, drops
// duplicates and builds the set polynomial once. Queries against the
// same dataset reuse the expansion.
func NewServer(dataset []*big.Int, cs Cryptosystem) *Server {
    seen := make(map[string]bool, len(dataset))
    roots := make([]*big.Int, 0, len(dataset))
    for _, s := range dataset {
        r := new(big.Int).Mod(s, cs.N())
        key := r.String()
        if seen[key] {
            continue
        }
        seen[key] = true
        roots = append(roots, r)
    }
    return &Server{
        cs:   cs,
        poly: NewSetPolynomial(roots, cs.N()),
        size: len(roots),
    }
}

// Size is the number of distinct dataset elements.
func (s *Server) Size() int {
    return s.size
}

// ProcessQuery homomorphically evaluates the set polynomial at the
// encrypted query point and blinds the result:
//
//	Enc(P(c)) = Enc(a_0) + sum_i Scale(Enc(c^i), a_i)
//	response  = Scale(Enc(P(c)), r) for fresh r in [1, N)
//
// A query whose length does not match the polynomial degree is a
// configuration mismatch between the parties and is rejected, never
// truncated or padded.
func (s *Server) ProcessQuery(query Query) (BlindedResponse, error) {
    if len(query) != s.poly.Degree() {
        return BlindedResponse{}, fmt.Errorf("%w: got %d powers, polynomial degree is %d",
            ErrProtocolState, len(query), s.poly.Degree())
    }
    acc, err := s.cs.Encrypt(s.poly.Coefficient(0))
    if err != nil {
        return BlindedResponse{}, err
    }
    for i := 1; i <= s.poly.Degree(); i += 1 {
        a := s.poly.Coefficient(i)
        if a.Sign() == 0 {
            continue
        }
        term, err := s.cs.Scale(query[i-1], a)
        if err != nil {
            return BlindedResponse{}, err
        }
        acc, err = s.cs.Add(acc, term)
        if err != nil {
            return BlindedResponse{}, err
        }
    }
    r, err := SampleNonzero(s.cs.N())
    if err != nil {
        return BlindedResponse{}, err
    }
    blinded, err := s.cs.Scale(acc, r)
    if err != nil {
        return BlindedResponse{}, err
    }
    return BlindedResponse{Value: blinded}, nil
}
