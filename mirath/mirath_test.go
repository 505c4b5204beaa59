package mirath

import (
	"bytes"
	"testing"

	"mirath-rx/internal/mparams"
)

func fixedRNG(b byte) *bytes.Reader {
	buf := make([]byte, 256)
	for i := range buf {
		buf[i] = b
	}
	return bytes.NewReader(buf)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	ps, err := mparams.Lookup(mparams.TagBaseline)
	if err != nil {
		t.Fatalf("lookup params: %v", err)
	}
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x01))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("MIRATH-RX-v1\x00\x01\x05\x00\x00\x00HELLO")
	sig, err := Sign(sk, msg, fixedRNG(0x02))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(pk, msg, sig) {
		t.Fatalf("Verify rejected a correctly constructed signature")
	}
}

func TestVerifyRejectsTamperedMessage(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x03))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message one")
	sig, err := Sign(sk, msg, fixedRNG(0x04))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	tampered := append([]byte(nil), msg...)
	tampered[0] ^= 0x01
	if Verify(pk, tampered, sig) {
		t.Fatalf("Verify accepted a signature under a tampered message")
	}
}

func TestVerifyRejectsTamperedBlob(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x05))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message two")
	sig, err := Sign(sk, msg, fixedRNG(0x06))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	encoded := sig.Bytes()
	encoded[len(encoded)-1] ^= 0x01
	tampered, err := ParseSignature(encoded)
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	if Verify(pk, msg, tampered) {
		t.Fatalf("Verify accepted a signature with a tampered final byte")
	}
}

func TestVerifyRejectsTamperedH1(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x07))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message three")
	sig, err := Sign(sk, msg, fixedRNG(0x08))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig.H1 = append([]byte(nil), sig.H1...)
	sig.H1[0] ^= 0x01
	if Verify(pk, msg, sig) {
		t.Fatalf("Verify accepted a signature with a flipped h_1 bit")
	}
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	_, sk1, err := GenerateKeyPair(ps, fixedRNG(0x09))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pk2, _, err := GenerateKeyPair(ps, fixedRNG(0x0A))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message four")
	sig, err := Sign(sk1, msg, fixedRNG(0x0B))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if Verify(pk2, msg, sig) {
		t.Fatalf("Verify accepted a signature against an unrelated public key")
	}
}

func TestVerifyRejectsTamperedY(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x0C))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("message five")
	sig, err := Sign(sk, msg, fixedRNG(0x0D))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	pk.Y = append([]byte(nil), pk.Y...)
	pk.Y[0] ^= 0x01
	if Verify(pk, msg, sig) {
		t.Fatalf("Verify accepted a signature under a tampered y binding")
	}
}

func TestSignDeterministic(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	_, sk, err := GenerateKeyPair(ps, fixedRNG(0x0E))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("deterministic message")
	salt := bytes.Repeat([]byte{0x5A}, ps.DigestBytes())
	sigA, err := signWithSalt(sk, msg, salt)
	if err != nil {
		t.Fatalf("signWithSalt: %v", err)
	}
	sigB, err := signWithSalt(sk, msg, salt)
	if err != nil {
		t.Fatalf("signWithSalt: %v", err)
	}
	if !bytes.Equal(sigA.Bytes(), sigB.Bytes()) {
		t.Fatalf("sign is not deterministic for fixed (seed_sec, salt, message, params)")
	}
}

func TestKeygenZeroSeedKnownAnswerVerifies(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	seedSec := make([]byte, ps.LambdaBytes)
	pk, sk, err := deriveKeyPair(ps, seedSec)
	if err != nil {
		t.Fatalf("deriveKeyPair: %v", err)
	}
	msg := []byte("MIRATH-RX-v1\x00\x01\x05\x00\x00\x00HELLO")
	salt := make([]byte, ps.DigestBytes())
	sig, err := signWithSalt(sk, msg, salt)
	if err != nil {
		t.Fatalf("signWithSalt: %v", err)
	}
	if !Verify(pk, msg, sig) {
		t.Fatalf("all-zero seed_sec/salt known-answer vector failed to verify")
	}
}

func TestEmptyMessageSignsAndVerifies(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x0F))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("MIRATH-RX-v1\x00")
	sig, err := Sign(sk, msg, fixedRNG(0x10))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if !Verify(pk, msg, sig) {
		t.Fatalf("Verify rejected a header-only message")
	}
	if len(sig.Bytes()) != 1+3*ps.DigestBytes()+m0ByteLen(ps)+ps.Tau*openingByteLen(ps) {
		t.Fatalf("signature length is not the fixed per-parameter constant")
	}
}

func TestSignatureByteRoundTrip(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	_, sk, err := GenerateKeyPair(ps, fixedRNG(0x11))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("round trip")
	sig, err := Sign(sk, msg, fixedRNG(0x12))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	encoded := sig.Bytes()
	decoded, err := ParseSignature(encoded)
	if err != nil {
		t.Fatalf("ParseSignature: %v", err)
	}
	if !bytes.Equal(decoded.Bytes(), encoded) {
		t.Fatalf("signature bytes did not round-trip through ParseSignature")
	}
}

func TestPublicKeyAndSecretKeyByteRoundTrip(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x13))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	pk2, err := ParsePublicKey(pk.Bytes())
	if err != nil {
		t.Fatalf("ParsePublicKey: %v", err)
	}
	if !bytes.Equal(pk2.Bytes(), pk.Bytes()) {
		t.Fatalf("public key did not round-trip")
	}
	sk2, err := ParseSecretKey(sk.Bytes())
	if err != nil {
		t.Fatalf("ParseSecretKey: %v", err)
	}
	if !bytes.Equal(sk2.Bytes(), sk.Bytes()) {
		t.Fatalf("secret key did not round-trip")
	}
}

func TestSecretKeyZeroize(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	_, sk, err := GenerateKeyPair(ps, fixedRNG(0x14))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	sk.Zeroize()
	for i, b := range sk.SeedSec {
		if b != 0 {
			t.Fatalf("byte %d of secret key not zeroed after Zeroize", i)
		}
	}
}

func TestVerifyNeverPanicsOnGarbage(t *testing.T) {
	ps, _ := mparams.Lookup(mparams.TagBaseline)
	pk, sk, err := GenerateKeyPair(ps, fixedRNG(0x15))
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	msg := []byte("garbage test")
	sig, err := Sign(sk, msg, fixedRNG(0x16))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	sig.openings = sig.openings[:len(sig.openings)-1]
	if Verify(pk, msg, sig) {
		t.Fatalf("Verify accepted a signature with a missing execution opening")
	}
}
