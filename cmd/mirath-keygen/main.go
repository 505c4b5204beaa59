// Command mirath-keygen generates a Mirath-RX keypair and writes
// PK_bytes/SK_bytes to disk, mirroring cmd/ntru_sign/main.go's
// flag-parse/log.Fatal/bytes-out shape.
package main

import (
	"crypto/rand"
	"flag"
	"log"
	"os"

	"mirath-rx/internal/mparams"
	"mirath-rx/mirath"
)

func main() {
	tag := flag.Int("tag", int(mparams.TagBaseline), "params_tag byte")
	pkOut := flag.String("pk", "rx.pk", "public key output path")
	skOut := flag.String("sk", "rx.sk", "secret key output path")
	flag.Parse()

	ps, err := mparams.Lookup(byte(*tag))
	if err != nil {
		log.Fatalf("mirath-keygen: %v", err)
	}
	pk, sk, err := mirath.GenerateKeyPair(ps, rand.Reader)
	if err != nil {
		log.Fatalf("mirath-keygen: %v", err)
	}
	if err := os.WriteFile(*pkOut, pk.Bytes(), 0o644); err != nil {
		log.Fatalf("mirath-keygen: writing public key: %v", err)
	}
	if err := os.WriteFile(*skOut, sk.Bytes(), 0o600); err != nil {
		log.Fatalf("mirath-keygen: writing secret key: %v", err)
	}
	sk.Zeroize()
}
