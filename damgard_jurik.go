package psmt

import (
    "math/big"

    "github.com/niclabs/tcpaillier"
)

// Damgård–Jurik backend via tcpaillier. With s = 1 the scheme is
// exactly Paillier; the threshold machinery is run with the client
// holding every key share and combining the partial decryptions
// locally, so the protocol roles stay the same as with the native
// implementation. Ciphertexts are raw big integers, as tcpaillier
// hands them out.

type DJPublicKey struct {
    *tcpaillier.PubKey
}

type DJSecretKey struct {
    pk     *tcpaillier.PubKey
    shares []*tcpaillier.KeyShare
}

// NewDJCryptosystem generates a Damgård–Jurik keypair of the given
// modulus bit length, split into the given number of shares all held
// by the client side.
func NewDJCryptosystem(bitSize int, shares uint8) (DJPublicKey, DJSecretKey, error) {
    key_shares, pk, err := tcpaillier.NewKey(bitSize, 1, shares, shares)
    if err != nil {
        return DJPublicKey{}, DJSecretKey{}, err
    }
    return DJPublicKey{pk}, DJSecretKey{pk: pk, shares: key_shares}, nil
}

func (pk DJPublicKey) Encrypt(plaintext *big.Int) (Ciphertext, error) {
    if plaintext.Sign() < 0 || plaintext.Cmp(pk.PubKey.N) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    ciphertext, _, err := pk.PubKey.Encrypt(plaintext)
    if err != nil {
        return nil, err
    }
    return ciphertext, nil
}

func (pk DJPublicKey) Add(ciphertexts ...Ciphertext) (Ciphertext, error) {
    terms := make([]*big.Int, len(ciphertexts))
    for i, c := range ciphertexts {
        val, ok := c.(*big.Int)
        if !ok {
            return nil, ErrKeyMismatch
        }
        terms[i] = val
    }
    return pk.PubKey.Add(terms...)
}

func (pk DJPublicKey) AddConstant(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    enc, err := pk.Encrypt(k)
    if err != nil {
        return nil, err
    }
    return pk.Add(ciphertext, enc)
}

func (pk DJPublicKey) Scale(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    val, ok := ciphertext.(*big.Int)
    if !ok {
        return nil, ErrKeyMismatch
    }
    if k.Sign() < 0 || k.Cmp(pk.PubKey.N) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    product, _, err := pk.PubKey.Multiply(val, k)
    if err != nil {
        return nil, err
    }
    return product, nil
}

func (pk DJPublicKey) N() *big.Int {
    return pk.PubKey.N
}

func (sk DJSecretKey) Decrypt(ciphertext Ciphertext) (*big.Int, error) {
    val, ok := ciphertext.(*big.Int)
    if !ok {
        return nil, ErrKeyMismatch
    }
    parts := make([]*tcpaillier.DecryptionShare, len(sk.shares))
    for i, share := range sk.shares {
        part, err := share.PartialDecrypt(val)
        if err != nil {
            return nil, err
        }
        parts[i] = part
    }
    return sk.pk.CombineShares(parts...)
}
