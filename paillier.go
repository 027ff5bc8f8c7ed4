package psmt

import (
    "fmt"
    "math/big"
)

// Paillier cryptosystem with the simplified generator g = n + 1, which
// is correct for any valid modulus without further checks.

var one = big.NewInt(1)

// number of attempts at finding a valid prime pair before giving up
const maxKeyGenTrials = 64

type PublicKey struct {
    n  *big.Int // modulus, product of two equal-length primes
    g  *big.Int // generator, n + 1
    n2 *big.Int // n^2, the ciphertext modulus
}

type PrivateKey struct {
    pk     *PublicKey
    lambda *big.Int // lcm(p-1, q-1)
    mu     *big.Int // L(g^lambda mod n^2)^-1 mod n
}

// PaillierCiphertext is an immutable encrypted value in [0, n^2),
// carrying the modulus it was produced under so that operations across
// mismatched keys are caught instead of silently computing garbage.
type PaillierCiphertext struct {
    value *big.Int
    n     *big.Int
}

// Int returns the wire representation of the ciphertext.
func (c *PaillierCiphertext) Int() *big.Int {
    return new(big.Int).Set(c.value)
}

// NewPublicKey reconstructs a public key received out-of-band.
func NewPublicKey(n, g *big.Int) *PublicKey {
    return &PublicKey{
        n:  new(big.Int).Set(n),
        g:  new(big.Int).Set(g),
        n2: new(big.Int).Mul(n, n),
    }
}

// GenerateKeys produces a keypair for a modulus of the given bit length.
// It samples two equal-length primes p, q with gcd(pq, (p-1)(q-1)) = 1,
// sets n = pq, g = n+1, lambda = lcm(p-1, q-1) and
// mu = L(g^lambda mod n^2)^-1 mod n. Sampling is retried a bounded
// number of times before the attempt is abandoned with ErrKeyGeneration.
func GenerateKeys(bits int) (*PublicKey, *PrivateKey, error) {
    if bits < 16 {
        return nil, nil, fmt.Errorf("%w: modulus of %d bits is too small", ErrKeyGeneration, bits)
    }
    for trial := 0; trial < maxKeyGenTrials; trial += 1 {
        p, err := samplePrime(bits / 2)
        if err != nil {
            return nil, nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
        }
        q, err := samplePrime(bits / 2)
        if err != nil {
            return nil, nil, fmt.Errorf("%w: %v", ErrKeyGeneration, err)
        }
        if p.Cmp(q) == 0 {
            continue
        }
        n := new(big.Int).Mul(p, q)
        pm1 := new(big.Int).Sub(p, one)
        qm1 := new(big.Int).Sub(q, one)
        phi := new(big.Int).Mul(pm1, qm1)
        if new(big.Int).GCD(nil, nil, n, phi).Cmp(one) != 0 {
            continue
        }
        pk := &PublicKey{
            n:  n,
            g:  new(big.Int).Add(n, one),
            n2: new(big.Int).Mul(n, n),
        }
        lambda := new(big.Int).Div(phi, new(big.Int).GCD(nil, nil, pm1, qm1))
        u := new(big.Int).Exp(pk.g, lambda, pk.n2)
        mu := new(big.Int).ModInverse(pk.l(u), n)
        if mu == nil {
            // cannot happen for a valid prime pair; a generation bug
            return nil, nil, fmt.Errorf("%w: no inverse for decryption exponent", ErrKeyGeneration)
        }
        return pk, &PrivateKey{pk: pk, lambda: lambda, mu: mu}, nil
    }
    return nil, nil, fmt.Errorf("%w: no valid prime pair in %d trials", ErrKeyGeneration, maxKeyGenTrials)
}

// L(x) = (x - 1) / n, defined on x = 1 mod n
func (pk *PublicKey) l(x *big.Int) *big.Int {
    return new(big.Int).Div(new(big.Int).Sub(x, one), pk.n)
}

// N is the size of the plaintext space.
func (pk *PublicKey) N() *big.Int {
    return pk.n
}

// G is the generator, published together with N.
func (pk *PublicKey) G() *big.Int {
    return pk.g
}

// CiphertextFromInt validates an integer received over the wire and
// wraps it as a ciphertext under this key.
func (pk *PublicKey) CiphertextFromInt(v *big.Int) (Ciphertext, error) {
    if v.Sign() < 0 || v.Cmp(pk.n2) >= 0 {
        return nil, fmt.Errorf("%w: value outside [0, n^2)", ErrInvalidCiphertext)
    }
    if new(big.Int).GCD(nil, nil, v, pk.n).Cmp(one) != 0 {
        return nil, fmt.Errorf("%w: value not invertible", ErrInvalidCiphertext)
    }
    return &PaillierCiphertext{value: new(big.Int).Set(v), n: pk.n}, nil
}

// Encrypt encrypts a plaintext in [0, n) with a fresh random blinding
// factor, so repeated encryptions of the same value differ.
func (pk *PublicKey) Encrypt(plaintext *big.Int) (Ciphertext, error) {
    r, err := SampleUnit(pk.n)
    if err != nil {
        return nil, err
    }
    return pk.EncryptFixed(plaintext, r)
}

// EncryptFixed encrypts with the given blinding factor, computing
// g^m * r^n mod n^2.
func (pk *PublicKey) EncryptFixed(plaintext, randomizer *big.Int) (Ciphertext, error) {
    if plaintext.Sign() < 0 || plaintext.Cmp(pk.n) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    gm := new(big.Int).Exp(pk.g, plaintext, pk.n2)
    rn := new(big.Int).Exp(randomizer, pk.n, pk.n2)
    v := gm.Mul(gm, rn)
    v.Mod(v, pk.n2)
    return &PaillierCiphertext{value: v, n: pk.n}, nil
}

// Add multiplies the ciphertexts mod n^2, which decrypts to the sum of
// the underlying plaintexts mod n.
func (pk *PublicKey) Add(ciphertexts ...Ciphertext) (Ciphertext, error) {
    if len(ciphertexts) == 0 {
        return nil, fmt.Errorf("%w: no operands", ErrInvalidCiphertext)
    }
    sum := big.NewInt(1)
    for _, c := range ciphertexts {
        pc, err := pk.cipher(c)
        if err != nil {
            return nil, err
        }
        sum.Mul(sum, pc.value)
        sum.Mod(sum, pk.n2)
    }
    return &PaillierCiphertext{value: sum, n: pk.n}, nil
}

// AddConstant computes c * g^k mod n^2, which decrypts to
// plaintext(c) + k mod n.
func (pk *PublicKey) AddConstant(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    pc, err := pk.cipher(ciphertext)
    if err != nil {
        return nil, err
    }
    if k.Sign() < 0 || k.Cmp(pk.n) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    v := new(big.Int).Exp(pk.g, k, pk.n2)
    v.Mul(v, pc.value)
    v.Mod(v, pk.n2)
    return &PaillierCiphertext{value: v, n: pk.n}, nil
}

// Scale computes c^k mod n^2, which decrypts to k * plaintext(c) mod n.
func (pk *PublicKey) Scale(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    pc, err := pk.cipher(ciphertext)
    if err != nil {
        return nil, err
    }
    if k.Sign() < 0 || k.Cmp(pk.n) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    return &PaillierCiphertext{value: new(big.Int).Exp(pc.value, k, pk.n2), n: pk.n}, nil
}

func (pk *PublicKey) cipher(c Ciphertext) (*PaillierCiphertext, error) {
    pc, ok := c.(*PaillierCiphertext)
    if !ok || pc.n.Cmp(pk.n) != 0 {
        return nil, ErrKeyMismatch
    }
    return pc, nil
}

// PublicKey returns the public half of the keypair.
func (sk *PrivateKey) PublicKey() *PublicKey {
    return sk.pk
}

// Decrypt recovers the plaintext as L(c^lambda mod n^2) * mu mod n.
func (sk *PrivateKey) Decrypt(ciphertext Ciphertext) (*big.Int, error) {
    pc, ok := ciphertext.(*PaillierCiphertext)
    if !ok || pc.n.Cmp(sk.pk.n) != 0 {
        return nil, ErrKeyMismatch
    }
    if pc.value.Sign() < 0 || pc.value.Cmp(sk.pk.n2) >= 0 {
        return nil, fmt.Errorf("%w: value outside [0, n^2)", ErrInvalidCiphertext)
    }
    u := new(big.Int).Exp(pc.value, sk.lambda, sk.pk.n2)
    u.Sub(u, one)
    l, rem := new(big.Int).DivMod(u, sk.pk.n, new(big.Int))
    if rem.Sign() != 0 {
        // c^lambda is not 1 mod n: corrupted ciphertext or wrong key
        return nil, fmt.Errorf("%w: value outside the cyclic structure", ErrInvalidCiphertext)
    }
    l.Mul(l, sk.mu)
    return l.Mod(l, sk.pk.n), nil
}
