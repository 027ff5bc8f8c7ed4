package psmt

import (
    "math/big"
    "testing"

    "github.com/stretchr/testify/require"
)

func TestMembershipProtocol(t *testing.T) {
    protocol, err := NewPaillierProtocol(testKeyBits)
    require.NoError(t, err)
    dataset := sliceToBigInt([]int64{3, 17, 42})

    res, err := protocol.Run(big.NewInt(17), dataset)
    require.NoError(t, err)
    require.True(t, res.Member, "17 should be a member")
    require.Equal(t, 3, res.SetSize)

    res, err = protocol.Run(big.NewInt(99), dataset)
    require.NoError(t, err)
    require.False(t, res.Member, "99 should not be a member")
}

func TestMembershipAllElements(t *testing.T) {
    protocol, err := NewPaillierProtocol(testKeyBits)
    require.NoError(t, err)
    dataset := sliceToBigInt([]int64{0, 7, 191, 1000000})
    for _, el := range dataset {
        res, err := protocol.Run(el, dataset)
        require.NoError(t, err)
        require.True(t, res.Member, "element %v should be a member", el)
    }
}

func TestMembershipEmptyDataset(t *testing.T) {
    protocol, err := NewPaillierProtocol(testKeyBits)
    require.NoError(t, err)
    res, err := protocol.Run(big.NewInt(5), nil)
    require.NoError(t, err)
    require.False(t, res.Member)
    require.Equal(t, 0, res.SetSize)
}

func TestMembershipDuplicateElements(t *testing.T) {
    protocol, err := NewPaillierProtocol(testKeyBits)
    require.NoError(t, err)
    dataset := sliceToBigInt([]int64{5, 5, 9, 5, 9})
    res, err := protocol.Run(big.NewInt(5), dataset)
    require.NoError(t, err)
    require.True(t, res.Member)
    require.Equal(t, 2, res.SetSize)
}

func TestBlindingSecrecy(t *testing.T) {
    pk, sk, err := GenerateKeys(testKeyBits)
    require.NoError(t, err)
    server := NewServer(sliceToBigInt([]int64{3, 17, 42}), pk)
    client, err := NewClient(big.NewInt(99), server.Size(), pk, sk)
    require.NoError(t, err)

    query1, err := client.CreateQuery()
    require.NoError(t, err)
    resp1, err := server.ProcessQuery(query1)
    require.NoError(t, err)

    query2, err := client.CreateQuery()
    require.NoError(t, err)
    resp2, err := server.ProcessQuery(query2)
    require.NoError(t, err)

    v1 := resp1.Value.(*PaillierCiphertext).Int()
    v2 := resp2.Value.(*PaillierCiphertext).Int()
    require.NotEqual(t, 0, v1.Cmp(v2), "two runs produced identical blinded responses")

    // identical encrypted power vectors would leak the query
    w1 := query1[0].(*PaillierCiphertext).Int()
    w2 := query2[0].(*PaillierCiphertext).Int()
    require.NotEqual(t, 0, w1.Cmp(w2), "two runs produced identical query ciphertexts")
}

func TestQueryLengthMismatch(t *testing.T) {
    pk, sk, err := GenerateKeys(testKeyBits)
    require.NoError(t, err)
    server := NewServer(sliceToBigInt([]int64{3, 17, 42}), pk)
    client, err := NewClient(big.NewInt(17), server.Size()-1, pk, sk)
    require.NoError(t, err)
    query, err := client.CreateQuery()
    require.NoError(t, err)
    _, err = server.ProcessQuery(query)
    require.ErrorIs(t, err, ErrProtocolState)
}

func TestClientQueryRange(t *testing.T) {
    pk, sk, err := GenerateKeys(testKeyBits)
    require.NoError(t, err)
    _, err = NewClient(big.NewInt(-1), 3, pk, sk)
    require.ErrorIs(t, err, ErrInvalidPlaintext)
    _, err = NewClient(pk.N(), 3, pk, sk)
    require.ErrorIs(t, err, ErrInvalidPlaintext)
}

func TestRunWithTimings(t *testing.T) {
    protocol, err := NewPaillierProtocol(testKeyBits)
    require.NoError(t, err)
    res, timings, err := protocol.RunWithTimings(big.NewInt(17), sliceToBigInt([]int64{3, 17, 42}))
    require.NoError(t, err)
    require.True(t, res.Member)
    require.Greater(t, timings.Total, timings.ServerEvaluation)
    require.NotZero(t, timings.KeyGeneration)
    require.NotZero(t, timings.ClientEncryption)
    require.NotZero(t, timings.ClientDecryption)
}
