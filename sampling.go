package psmt

import (
    "crypto/rand"
    "math/big"
)

// sample a uniform random integer smaller than q
func SampleInt(q *big.Int) (*big.Int, error) {
    return rand.Int(rand.Reader, q)
}

// sample a uniform random integer in [1, q)
func SampleNonzero(q *big.Int) (*big.Int, error) {
    bound := new(big.Int).Sub(q, big.NewInt(1))
    r, err := rand.Int(rand.Reader, bound)
    if err != nil {
        return nil, err
    }
    return r.Add(r, big.NewInt(1)), nil
}

// sample a uniform random unit of Z/n, rejecting and resampling
// candidates sharing a factor with n
func SampleUnit(n *big.Int) (*big.Int, error) {
    one := big.NewInt(1)
    gcd := new(big.Int)
    for {
        r, err := rand.Int(rand.Reader, n)
        if err != nil {
            return nil, err
        }
        if r.Sign() == 0 {
            continue
        }
        if gcd.GCD(nil, nil, r, n).Cmp(one) == 0 {
            return r, nil
        }
    }
}

// sample a prime of the given bit length
func samplePrime(bits int) (*big.Int, error) {
    return rand.Prime(rand.Reader, bits)
}
