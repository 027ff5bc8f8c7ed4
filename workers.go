package psmt

import (
    "math/big"
    "sync"
)

// Batch queries are independent repetitions of the protocol: no state
// is shared between them beyond the immutable keypair and the server's
// set polynomial, so they can run fully in parallel.

type BatchResult struct {
    Result
    Err error
}

type indexedQuery struct {
    index int
    query *big.Int
}

type indexedResult struct {
    index  int
    result BatchResult
}

// membershipWorker runs one full query-evaluate-decide round per job
// received on query_channel, delivering results on return_channel.
func membershipWorker(server *Server, p *Protocol,
                      query_channel <-chan indexedQuery,
                      return_channel chan<- indexedResult) {
    for job := range query_channel {
        member, err := p.runAgainst(job.query, server, nil)
        res := BatchResult{Err: err}
        if err == nil {
            res.Result = Result{
                Member:  member,
                Query:   job.query,
                SetSize: server.Size(),
            }
        }
        return_channel <- indexedResult{index: job.index, result: res}
    }
}

// RunBatch answers several membership queries against one dataset,
// fanning the work out over the given number of worker goroutines. The
// server's polynomial is expanded once and shared read-only. Results
// are returned in query order.
func RunBatch(queries []*big.Int, dataset []*big.Int, p *Protocol, workers int) []BatchResult {
    if workers < 1 {
        workers = 1
    }
    if workers > len(queries) {
        workers = len(queries)
    }
    server := NewServer(dataset, p.cs)

    query_channel := make(chan indexedQuery, len(queries))
    return_channel := make(chan indexedResult, len(queries))

    var wg sync.WaitGroup
    wg.Add(workers)
    for i := 0; i < workers; i += 1 {
        go func() {
            defer wg.Done()
            membershipWorker(server, p, query_channel, return_channel)
        }()
    }
    for i, q := range queries {
        query_channel <- indexedQuery{index: i, query: q}
    }
    close(query_channel)
    wg.Wait()
    close(return_channel)

    results := make([]BatchResult, len(queries))
    for r := range return_channel {
        results[r.index] = r.result
    }
    return results
}
