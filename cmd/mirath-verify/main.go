// Command mirath-verify checks a signature blob against a public key and
// canonical message file, mirroring cmd/ntru_sign/main.go's
// flag-parse/log.Fatal shape. Exit code 0 means accept, 1 means reject;
// it never panics on malformed input (mirath.Verify's own contract).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"mirath-rx/mirath"
)

func main() {
	pkPath := flag.String("pk", "", "public key file path (PK_bytes)")
	msgPath := flag.String("msg", "", "canonical message file path")
	sigPath := flag.String("sig", "", "signature file path (blob_bytes)")
	flag.Parse()

	if *pkPath == "" || *msgPath == "" || *sigPath == "" {
		log.Fatal("mirath-verify: -pk, -msg and -sig are required")
	}
	pkBytes, err := os.ReadFile(*pkPath)
	if err != nil {
		log.Fatalf("mirath-verify: reading public key: %v", err)
	}
	pk, err := mirath.ParsePublicKey(pkBytes)
	if err != nil {
		log.Fatalf("mirath-verify: %v", err)
	}
	msg, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Fatalf("mirath-verify: reading message: %v", err)
	}
	sigBytes, err := os.ReadFile(*sigPath)
	if err != nil {
		log.Fatalf("mirath-verify: reading signature: %v", err)
	}
	sig, err := mirath.ParseSignature(sigBytes)
	if err != nil {
		fmt.Println("reject")
		os.Exit(1)
	}
	if mirath.Verify(pk, msg, sig) {
		fmt.Println("accept")
		return
	}
	fmt.Println("reject")
	os.Exit(1)
}
