package main

import (
    "fmt"
    "math/big"
    "os"
    "strconv"
    "strings"
    "time"

    "github.com/pli233/psmt"
)

func main() {
    startT := time.Now()

    if len(os.Args) < 5 {
        fmt.Println("Wrong number of arguments: cryptosystem key-bits dataset-file query [query ...]")
        os.Exit(1)
    }

    css := os.Args[1]
    bits, err := strconv.Atoi(os.Args[2])
    if err != nil {
        fmt.Println("Error when parsing key-bits")
        os.Exit(1)
    }
    dataset := parseElementFile(os.Args[3])
    queries := make([]*big.Int, len(os.Args[4:]))
    for i, arg := range os.Args[4:] {
        q, ok := new(big.Int).SetString(arg, 10)
        if !ok {
            fmt.Printf("Error when parsing query %q\n", arg)
            os.Exit(1)
        }
        queries[i] = q
    }

    var protocol *psmt.Protocol
    switch css {
    case "paillier":
        protocol, err = psmt.NewPaillierProtocol(bits)
    case "dj":
        var pk psmt.DJPublicKey
        var sk psmt.DJSecretKey
        pk, sk, err = psmt.NewDJCryptosystem(bits, 2)
        if err == nil {
            protocol = psmt.NewProtocol(pk, sk)
        }
    case "bfv":
        pk, sk := psmt.NewBFVCryptosystem()
        protocol = psmt.NewProtocol(pk, sk)
    default:
        fmt.Printf("Cryptosystem %v not available.\n", css)
        os.Exit(1)
    }
    if err != nil {
        fmt.Printf("Setup failed: %v\n", err)
        os.Exit(1)
    }

    fmt.Printf("dataset: %d elements, cryptosystem: %v\n", len(dataset), css)
    fmt.Println("-------")

    results := psmt.RunBatch(queries, dataset, protocol, 4)
    for i, res := range results {
        if res.Err != nil {
            fmt.Printf("query %v: error: %v\n", queries[i], res.Err)
            continue
        }
        verdict := "is NOT in the set"
        if res.Member {
            verdict = "IS in the set"
        }
        fmt.Printf("query %v: %v\n", queries[i], verdict)
    }

    fmt.Printf("-------\ntotal time: %v\n", time.Since(startT))
}

func parseElementFile(filename string) []*big.Int {
    contents, err := os.ReadFile(filename)
    if err != nil {
        fmt.Printf("Error when reading %v: %v\n", filename, err)
        os.Exit(1)
    }
    var elements []*big.Int
    for _, field := range strings.FieldsFunc(string(contents), func(r rune) bool {
        return r == ',' || r == '\n' || r == ' ' || r == '\r' || r == '\t'
    }) {
        el, ok := new(big.Int).SetString(field, 10)
        if !ok {
            fmt.Printf("Error when parsing element %q\n", field)
            os.Exit(1)
        }
        elements = append(elements, el)
    }
    return elements
}
