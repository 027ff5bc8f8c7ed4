package psmt

import (
    "math/big"
)

// Ciphertext is an opaque encrypted value. Its concrete type is owned
// by the cryptosystem that produced it; mixing ciphertexts between
// cryptosystems or keypairs is rejected by the homomorphic operations.
type Ciphertext interface{}

// Cryptosystem is an additively homomorphic public-key scheme, as seen
// by the party holding only the public key.
type Cryptosystem interface {
    // Encrypt encrypts a plaintext from [0, N) with fresh randomness.
    Encrypt(plaintext *big.Int) (Ciphertext, error)

    // Add returns a ciphertext decrypting to the sum of the operands' plaintexts mod N.
    Add(ciphertexts ...Ciphertext) (Ciphertext, error)

    // AddConstant returns a ciphertext decrypting to plaintext(c) + k mod N.
    AddConstant(ciphertext Ciphertext, k *big.Int) (Ciphertext, error)

    // Scale returns a ciphertext decrypting to k * plaintext(c) mod N, for 0 <= k < N.
    Scale(ciphertext Ciphertext, k *big.Int) (Ciphertext, error)

    // N is the size of the plaintext space.
    N() *big.Int
}

// SecretKey is the decryption side of a Cryptosystem, held only by the
// client in the membership protocol.
type SecretKey interface {
    Decrypt(ciphertext Ciphertext) (*big.Int, error)
}
