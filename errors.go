package psmt

import (
    "errors"
)

var (
    // ErrKeyGeneration signals that prime sampling or an inverse
    // computation failed during key generation. Retry with fresh randomness.
    ErrKeyGeneration = errors.New("key generation failed")

    // ErrInvalidPlaintext signals a plaintext or scalar outside [0, n).
    ErrInvalidPlaintext = errors.New("plaintext outside [0, n)")

    // ErrInvalidCiphertext signals a ciphertext outside [0, n^2) or not
    // invertible under the scheme, indicating corruption or a wrong key.
    ErrInvalidCiphertext = errors.New("invalid ciphertext")

    // ErrKeyMismatch signals a homomorphic operation across ciphertexts
    // produced under different keys.
    ErrKeyMismatch = errors.New("ciphertexts encrypted under different keys")

    // ErrProtocolState signals a wire-format mismatch between client and
    // server, e.g. a query whose length does not match the polynomial degree.
    ErrProtocolState = errors.New("query length does not match polynomial degree")
)
