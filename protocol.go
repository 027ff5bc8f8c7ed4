package psmt

import (
    "math/big"
    "time"
)

// Result of one membership query.
type Result struct {
    Member  bool
    Query   *big.Int
    SetSize int
    Elapsed time.Duration
}

// Timings breaks a protocol run down by phase.
type Timings struct {
    KeyGeneration    time.Duration
    ClientEncryption time.Duration
    ServerEvaluation time.Duration
    ClientDecryption time.Duration
    Total            time.Duration
}

// Protocol binds a cryptosystem and its secret key for running
// membership queries. The same protocol value may serve arbitrarily
// many concurrent queries; it holds no per-query state.
type Protocol struct {
    cs     Cryptosystem
    sk     SecretKey
    keyGen time.Duration
}

// NewProtocol wraps an existing keypair.
func NewProtocol(cs Cryptosystem, sk SecretKey) *Protocol {
    return &Protocol{cs: cs, sk: sk}
}

// NewPaillierProtocol generates a fresh Paillier keypair of the given
// modulus bit length. 2048 bits is a reasonable default; the blinding
// false-positive probability shrinks with the modulus size.
func NewPaillierProtocol(keyBits int) (*Protocol, error) {
    start := time.Now()
    pk, sk, err := GenerateKeys(keyBits)
    if err != nil {
        return nil, err
    }
    return &Protocol{cs: pk, sk: sk, keyGen: time.Since(start)}, nil
}

// Run executes the three protocol phases for a single query.
func (p *Protocol) Run(query *big.Int, dataset []*big.Int) (Result, error) {
    start := time.Now()
    server := NewServer(dataset, p.cs)
    member, err := p.runAgainst(query, server, nil)
    if err != nil {
        return Result{}, err
    }
    return Result{
        Member:  member,
        Query:   query,
        SetSize: server.Size(),
        Elapsed: time.Since(start),
    }, nil
}

// RunWithTimings executes a single query and reports per-phase timings.
func (p *Protocol) RunWithTimings(query *big.Int, dataset []*big.Int) (Result, Timings, error) {
    start := time.Now()
    server := NewServer(dataset, p.cs)
    var t Timings
    member, err := p.runAgainst(query, server, &t)
    if err != nil {
        return Result{}, Timings{}, err
    }
    t.KeyGeneration = p.keyGen
    t.Total = time.Since(start)
    res := Result{
        Member:  member,
        Query:   query,
        SetSize: server.Size(),
        Elapsed: t.Total,
    }
    return res, t, nil
}

func (p *Protocol) runAgainst(query *big.Int, server *Server, t *Timings) (bool, error) {
    client, err := NewClient(query, server.Size(), p.cs, p.sk)
    if err != nil {
        return false, err
    }

    phase := time.Now()
    msg, err := client.CreateQuery()
    if err != nil {
        return false, err
    }
    if t != nil {
        t.ClientEncryption = time.Since(phase)
    }

    phase = time.Now()
    response, err := server.ProcessQuery(msg)
    if err != nil {
        return false, err
    }
    if t != nil {
        t.ServerEvaluation = time.Since(phase)
    }

    phase = time.Now()
    member, err := client.CheckMembership(response)
    if err != nil {
        return false, err
    }
    if t != nil {
        t.ClientDecryption = time.Since(phase)
    }
    return member, nil
}

// RunMembershipTest answers a single membership question over a fresh
// Paillier keypair.
func RunMembershipTest(query *big.Int, dataset []*big.Int, keyBits int) (bool, error) {
    p, err := NewPaillierProtocol(keyBits)
    if err != nil {
        return false, err
    }
    res, err := p.Run(query, dataset)
    if err != nil {
        return false, err
    }
    return res.Member, nil
}
