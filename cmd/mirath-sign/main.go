// Command mirath-sign signs a canonical message file with a Mirath-RX
// secret key, mirroring cmd/ntru_sign/main.go's flag-parse/log.Fatal/
// bytes-out shape.
package main

import (
	"crypto/rand"
	"flag"
	"log"
	"os"

	"mirath-rx/mirath"
)

func main() {
	skPath := flag.String("sk", "", "secret key file path (SK_bytes)")
	msgPath := flag.String("msg", "", "canonical message file path")
	out := flag.String("out", "rx.sig", "signature output path")
	flag.Parse()

	if *skPath == "" || *msgPath == "" {
		log.Fatal("mirath-sign: -sk and -msg are required")
	}
	skBytes, err := os.ReadFile(*skPath)
	if err != nil {
		log.Fatalf("mirath-sign: reading secret key: %v", err)
	}
	sk, err := mirath.ParseSecretKey(skBytes)
	if err != nil {
		log.Fatalf("mirath-sign: %v", err)
	}
	msg, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Fatalf("mirath-sign: reading message: %v", err)
	}
	sig, err := mirath.Sign(sk, msg, rand.Reader)
	if err != nil {
		log.Fatalf("mirath-sign: %v", err)
	}
	sk.Zeroize()
	if err := os.WriteFile(*out, sig.Bytes(), 0o644); err != nil {
		log.Fatalf("mirath-sign: writing signature: %v", err)
	}
}
