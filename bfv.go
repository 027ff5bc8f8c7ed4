package psmt

import (
    "math/big"

    "github.com/ldsec/lattigo/bfv"
)

// BFV backend via lattigo, restricted to the additive operations the
// protocol needs. The plaintext space is Z/T with T = 65537 prime, so
// unlike the composite Paillier modulus the blinded product r * P(c)
// has no zero divisors and the decision phase has no false positives.

type BFVPublicKey struct {
    params *bfv.Parameters
    pk     *bfv.PublicKey
}

type BFVSecretKey struct {
    params *bfv.Parameters
    sk     *bfv.SecretKey
}

type BFVCiphertext struct {
    msg *bfv.Ciphertext
}

// NewBFVCryptosystem generates a single-party BFV keypair over the
// default PN14QP438 parameter set.
func NewBFVCryptosystem() (BFVPublicKey, BFVSecretKey) {
    params := bfv.DefaultParams[bfv.PN14QP438]
    params.T = 65537
    sk, pk := bfv.NewKeyGenerator(params).GenKeyPair()
    return BFVPublicKey{params: params, pk: pk}, BFVSecretKey{params: params, sk: sk}
}

func (pk BFVPublicKey) Encrypt(plaintext *big.Int) (Ciphertext, error) {
    if plaintext.Sign() < 0 || plaintext.Cmp(pk.N()) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    encoder := bfv.NewEncoder(pk.params)
    encryptor := bfv.NewEncryptorFromPk(pk.params, pk.pk)
    pt := bfv.NewPlaintext(pk.params)
    encoder.EncodeUint([]uint64{plaintext.Uint64()}, pt)
    return BFVCiphertext{msg: encryptor.EncryptNew(pt)}, nil
}

func (pk BFVPublicKey) Add(ciphertexts ...Ciphertext) (Ciphertext, error) {
    if len(ciphertexts) == 0 {
        return nil, ErrInvalidCiphertext
    }
    first, ok := ciphertexts[0].(BFVCiphertext)
    if !ok {
        return nil, ErrKeyMismatch
    }
    evaluator := bfv.NewEvaluator(pk.params)
    sum := first.msg
    for _, c := range ciphertexts[1:] {
        val, ok := c.(BFVCiphertext)
        if !ok {
            return nil, ErrKeyMismatch
        }
        sum = evaluator.AddNew(sum, val.msg)
    }
    return BFVCiphertext{msg: sum}, nil
}

func (pk BFVPublicKey) AddConstant(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    enc, err := pk.Encrypt(k)
    if err != nil {
        return nil, err
    }
    return pk.Add(ciphertext, enc)
}

func (pk BFVPublicKey) Scale(ciphertext Ciphertext, k *big.Int) (Ciphertext, error) {
    val, ok := ciphertext.(BFVCiphertext)
    if !ok {
        return nil, ErrKeyMismatch
    }
    if k.Sign() < 0 || k.Cmp(pk.N()) >= 0 {
        return nil, ErrInvalidPlaintext
    }
    evaluator := bfv.NewEvaluator(pk.params)
    return BFVCiphertext{msg: evaluator.MulScalarNew(val.msg, k.Uint64())}, nil
}

func (pk BFVPublicKey) N() *big.Int {
    return new(big.Int).SetUint64(pk.params.T)
}

func (sk BFVSecretKey) Decrypt(ciphertext Ciphertext) (*big.Int, error) {
    val, ok := ciphertext.(BFVCiphertext)
    if !ok {
        return nil, ErrKeyMismatch
    }
    decryptor := bfv.NewDecryptor(sk.params, sk.sk)
    pt := bfv.NewPlaintext(sk.params)
    decryptor.Decrypt(val.msg, pt)
    encoder := bfv.NewEncoder(sk.params)
    dec := encoder.DecodeUint(pt)
    return new(big.Int).SetUint64(dec[0]), nil
}
