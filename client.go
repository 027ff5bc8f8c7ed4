package psmt

import (
    "fmt"
    "math/big"
)

// Query is the client's wire message: the encrypted powers
// Enc(c^1), ..., Enc(c^n), where n is the server's set size. Each power
// is encrypted independently with fresh randomness. The constant power
// c^0 is not sent; the server encrypts its own constant term.
type Query []Ciphertext

// BlindedResponse is the server's wire message: a single ciphertext
// holding r * P(c) mod N for a fresh nonzero blinding factor r.
type BlindedResponse struct {
    Value Ciphertext
}

// Client holds the private query value together with both halves of the
// key material. The secret key never leaves the client.
type Client struct {
    cs      Cryptosystem
    sk      SecretKey
    query   *big.Int
    setSize int
}

// NewClient validates the query value against the plaintext ring and
// binds it to a keypair and the announced server set size.
func NewClient(query *big.Int, setSize int, cs Cryptosystem, sk SecretKey) (*Client, error) {
    if query.Sign() < 0 || query.Cmp(cs.N()) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    if setSize < 0 {
        return nil, fmt.Errorf("%w: negative set size %d", ErrProtocolState, setSize)
    }
    return &Client{cs: cs, sk: sk, query: new(big.Int).Set(query), setSize: setSize}, nil
}

// CreateQuery encrypts the powers c^1..c^n of the query value. The
// powers are computed in the clear by the client and encrypted one by
// one, since the additive scheme cannot multiply two ciphertexts on the
// server side.
func (c *Client) CreateQuery() (Query, error) {
    query := make(Query, c.setSize)
    power := big.NewInt(1)
    for i := 0; i < c.setSize; i += 1 {
        power = new(big.Int).Mul(power, c.query)
        power.Mod(power, c.cs.N())
        enc, err := c.cs.Encrypt(power)
        if err != nil {
            return nil, err
        }
        query[i] = enc
    }
    return query, nil
}

// CheckMembership decrypts the blinded evaluation r * P(c) and decides
// membership by testing it against zero. With P(c) != 0 the product can
// only vanish if r collides with a factor of the modulus, which happens
// with negligible probability for a hard-to-factor composite; that
// residual false-positive chance is inherent to the scheme.
func (c *Client) CheckMembership(response BlindedResponse) (bool, error) {
    v, err := c.sk.Decrypt(response.Value)
    if err != nil {
        return false, err
    }
    return v.Sign() == 0, nil
}
