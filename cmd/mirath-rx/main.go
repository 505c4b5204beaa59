// Command mirath-rx is the minimal physician/pharmacist workflow
// spec.md §1 names out of scope beyond interface: flag-driven sub-mode
// dispatch, grounded on cmd/ntrucli/main.go's gen/sign/verify/pacs
// switch over os.Args[1]. It holds no cryptographic logic of its own —
// every subcommand calls straight into prescription and mirath.
package main

import (
	"crypto/rand"
	"flag"
	"fmt"
	"log"
	"os"

	"mirath-rx/mirath"
	"mirath-rx/prescription"
)

func usage() {
	fmt.Println(`usage: mirath-rx <physician|pharmacist> [options]

Subcommands:
  physician   Canonicalize a prescription, sign it, and write
              <out>.msg and <out>.sig.
              Flags: -sk, -out, -patient, -dob, -med, -dosage, -qty,
                     -refills, -npi, -issued, -directions, -rxid

  pharmacist  Verify a signed prescription.
              Flags: -pk, -msg, -sig`)
	os.Exit(1)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}
	switch os.Args[1] {
	case "physician":
		runPhysician(os.Args[2:])
	case "pharmacist":
		runPharmacist(os.Args[2:])
	default:
		usage()
	}
}

func runPhysician(args []string) {
	fs := flag.NewFlagSet("physician", flag.ExitOnError)
	skPath := fs.String("sk", "", "secret key file path (SK_bytes)")
	out := fs.String("out", "rx", "output basename; writes <out>.msg and <out>.sig")
	patient := fs.String("patient", "", "patient name")
	dob := fs.String("dob", "", "patient date of birth")
	med := fs.String("med", "", "medication")
	dosage := fs.String("dosage", "", "dosage")
	qty := fs.Int("qty", 0, "quantity")
	refills := fs.Int("refills", 0, "refills")
	npi := fs.String("npi", "", "prescriber NPI")
	issued := fs.String("issued", "", "issued date")
	directions := fs.String("directions", "", "directions (optional)")
	rxid := fs.String("rxid", "", "unique prescription id")
	_ = fs.Parse(args)

	skBytes, err := os.ReadFile(*skPath)
	if err != nil {
		log.Fatalf("mirath-rx physician: reading secret key: %v", err)
	}
	sk, err := mirath.ParseSecretKey(skBytes)
	if err != nil {
		log.Fatalf("mirath-rx physician: %v", err)
	}

	p := prescription.Prescription{
		PatientName:   *patient,
		PatientDOB:    *dob,
		Medication:    *med,
		Dosage:        *dosage,
		Quantity:      *qty,
		Refills:       *refills,
		PrescriberNPI: *npi,
		IssuedDate:    *issued,
		Directions:    *directions,
		UniqueRxID:    *rxid,
	}
	msg, err := prescription.Canonicalize(p)
	if err != nil {
		log.Fatalf("mirath-rx physician: %v", err)
	}
	sig, err := mirath.Sign(sk, msg, rand.Reader)
	if err != nil {
		log.Fatalf("mirath-rx physician: %v", err)
	}
	sk.Zeroize()

	if err := os.WriteFile(*out+".msg", msg, 0o644); err != nil {
		log.Fatalf("mirath-rx physician: writing message: %v", err)
	}
	if err := os.WriteFile(*out+".sig", sig.Bytes(), 0o644); err != nil {
		log.Fatalf("mirath-rx physician: writing signature: %v", err)
	}
	fmt.Printf("signed prescription %s: wrote %s.msg and %s.sig\n", p.UniqueRxID, *out, *out)
}

func runPharmacist(args []string) {
	fs := flag.NewFlagSet("pharmacist", flag.ExitOnError)
	pkPath := fs.String("pk", "", "public key file path (PK_bytes)")
	msgPath := fs.String("msg", "", "canonical message file path")
	sigPath := fs.String("sig", "", "signature file path (blob_bytes)")
	_ = fs.Parse(args)

	pkBytes, err := os.ReadFile(*pkPath)
	if err != nil {
		log.Fatalf("mirath-rx pharmacist: reading public key: %v", err)
	}
	pk, err := mirath.ParsePublicKey(pkBytes)
	if err != nil {
		log.Fatalf("mirath-rx pharmacist: %v", err)
	}
	msg, err := os.ReadFile(*msgPath)
	if err != nil {
		log.Fatalf("mirath-rx pharmacist: reading message: %v", err)
	}
	sigBytes, err := os.ReadFile(*sigPath)
	if err != nil {
		log.Fatalf("mirath-rx pharmacist: reading signature: %v", err)
	}
	sig, err := mirath.ParseSignature(sigBytes)
	if err != nil {
		fmt.Println("reject: malformed signature blob")
		os.Exit(1)
	}
	if mirath.Verify(pk, msg, sig) {
		fmt.Println("accept")
		return
	}
	fmt.Println("reject")
	os.Exit(1)
}
