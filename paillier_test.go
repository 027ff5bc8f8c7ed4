package psmt

import (
    "errors"
    "math/big"
    "testing"
)

const testKeyBits = 512

func testKeys(t *testing.T) (*PublicKey, *PrivateKey) {
    t.Helper()
    pk, sk, err := GenerateKeys(testKeyBits)
    if err != nil {
        t.Fatalf("%v", err)
    }
    return pk, sk
}

func TestGenerateKeys(t *testing.T) {
    pk, sk := testKeys(t)
    if pk.N().BitLen() < testKeyBits-1 {
        t.Errorf("modulus too small: %d bits", pk.N().BitLen())
    }
    if pk.N().ProbablyPrime(20) {
        t.Error("modulus is prime, expected a two-prime composite")
    }
    expected_g := new(big.Int).Add(pk.N(), big.NewInt(1))
    if pk.G().Cmp(expected_g) != 0 {
        t.Error("generator is not n+1")
    }
    if sk.PublicKey() != pk {
        t.Error("private key not bound to public key")
    }
}

func TestEncryptDecrypt(t *testing.T) {
    pk, sk := testKeys(t)
    values := []*big.Int{
        big.NewInt(0),
        big.NewInt(1),
        big.NewInt(123456789),
        new(big.Int).Sub(pk.N(), big.NewInt(1)),
    }
    for _, m := range values {
        c, err := pk.Encrypt(m)
        if err != nil {
            t.Fatalf("%v", err)
        }
        dec, err := sk.Decrypt(c)
        if err != nil {
            t.Fatalf("%v", err)
        }
        if dec.Cmp(m) != 0 {
            t.Errorf("decrypted %v, expected %v", dec, m)
        }
    }
}

func TestEncryptRandomized(t *testing.T) {
    pk, _ := testKeys(t)
    m := big.NewInt(42)
    c1, err := pk.Encrypt(m)
    if err != nil {
        t.Fatalf("%v", err)
    }
    c2, err := pk.Encrypt(m)
    if err != nil {
        t.Fatalf("%v", err)
    }
    if c1.(*PaillierCiphertext).Int().Cmp(c2.(*PaillierCiphertext).Int()) == 0 {
        t.Error("two encryptions of the same plaintext are identical")
    }
}

func TestEncryptFixed(t *testing.T) {
    pk, _ := testKeys(t)
    m := big.NewInt(42)
    r := big.NewInt(12345)
    c1, err := pk.EncryptFixed(m, r)
    if err != nil {
        t.Fatalf("%v", err)
    }
    c2, err := pk.EncryptFixed(m, r)
    if err != nil {
        t.Fatalf("%v", err)
    }
    if c1.(*PaillierCiphertext).Int().Cmp(c2.(*PaillierCiphertext).Int()) != 0 {
        t.Error("fixed-randomizer encryptions differ")
    }
}

func TestEncryptRangeRejection(t *testing.T) {
    pk, _ := testKeys(t)
    for _, m := range []*big.Int{pk.N(), big.NewInt(-1)} {
        if _, err := pk.Encrypt(m); !errors.Is(err, ErrInvalidPlaintext) {
            t.Errorf("encrypt(%v): expected ErrInvalidPlaintext, got %v", m, err)
        }
    }
}

func TestHomomorphicAdd(t *testing.T) {
    pk, sk := testKeys(t)
    m1 := big.NewInt(1234)
    m2 := big.NewInt(8766)
    c1, _ := pk.Encrypt(m1)
    c2, _ := pk.Encrypt(m2)
    sum, err := pk.Add(c1, c2)
    if err != nil {
        t.Fatalf("%v", err)
    }
    dec, err := sk.Decrypt(sum)
    if err != nil {
        t.Fatalf("%v", err)
    }
    expected := new(big.Int).Add(m1, m2)
    expected.Mod(expected, pk.N())
    if dec.Cmp(expected) != 0 {
        t.Errorf("decrypted sum %v, expected %v", dec, expected)
    }
}

func TestAddConstant(t *testing.T) {
    pk, sk := testKeys(t)
    m := big.NewInt(100)
    k := big.NewInt(23)
    c, _ := pk.Encrypt(m)
    shifted, err := pk.AddConstant(c, k)
    if err != nil {
        t.Fatalf("%v", err)
    }
    dec, err := sk.Decrypt(shifted)
    if err != nil {
        t.Fatalf("%v", err)
    }
    if dec.Cmp(big.NewInt(123)) != 0 {
        t.Errorf("decrypted %v, expected 123", dec)
    }
}

func TestScale(t *testing.T) {
    pk, sk := testKeys(t)
    m := big.NewInt(111)
    k := big.NewInt(9)
    c, _ := pk.Encrypt(m)
    scaled, err := pk.Scale(c, k)
    if err != nil {
        t.Fatalf("%v", err)
    }
    dec, err := sk.Decrypt(scaled)
    if err != nil {
        t.Fatalf("%v", err)
    }
    if dec.Cmp(big.NewInt(999)) != 0 {
        t.Errorf("decrypted %v, expected 999", dec)
    }
    t.Run("scalar range", func(t *testing.T) {
        if _, err := pk.Scale(c, big.NewInt(-1)); !errors.Is(err, ErrInvalidPlaintext) {
            t.Errorf("expected ErrInvalidPlaintext, got %v", err)
        }
    })
}

func TestKeyMismatch(t *testing.T) {
    pk1, _ := testKeys(t)
    pk2, sk2 := testKeys(t)
    c1, _ := pk1.Encrypt(big.NewInt(5))
    c2, _ := pk2.Encrypt(big.NewInt(7))
    if _, err := pk1.Add(c1, c2); !errors.Is(err, ErrKeyMismatch) {
        t.Errorf("add across keys: expected ErrKeyMismatch, got %v", err)
    }
    if _, err := pk2.Scale(c1, big.NewInt(2)); !errors.Is(err, ErrKeyMismatch) {
        t.Errorf("scale across keys: expected ErrKeyMismatch, got %v", err)
    }
    if _, err := sk2.Decrypt(c1); !errors.Is(err, ErrKeyMismatch) {
        t.Errorf("decrypt across keys: expected ErrKeyMismatch, got %v", err)
    }
}

func TestCiphertextFromInt(t *testing.T) {
    pk, sk := testKeys(t)
    m := big.NewInt(77)
    c, _ := pk.Encrypt(m)
    wire := c.(*PaillierCiphertext).Int()
    restored, err := pk.CiphertextFromInt(wire)
    if err != nil {
        t.Fatalf("%v", err)
    }
    dec, err := sk.Decrypt(restored)
    if err != nil {
        t.Fatalf("%v", err)
    }
    if dec.Cmp(m) != 0 {
        t.Errorf("decrypted %v, expected %v", dec, m)
    }
    t.Run("out of range", func(t *testing.T) {
        n2 := new(big.Int).Mul(pk.N(), pk.N())
        if _, err := pk.CiphertextFromInt(n2); !errors.Is(err, ErrInvalidCiphertext) {
            t.Errorf("expected ErrInvalidCiphertext, got %v", err)
        }
        if _, err := pk.CiphertextFromInt(big.NewInt(-1)); !errors.Is(err, ErrInvalidCiphertext) {
            t.Errorf("expected ErrInvalidCiphertext, got %v", err)
        }
    })
}
