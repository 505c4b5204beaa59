// Package xof wires the single extendable-output function (SHAKE-256) that
// backs every symmetric primitive spec.md §4.B names: seed expansion,
// commitment, and the two Fiat-Shamir challenge hashes. Grounded on
// PIOP/fs_helpers.go's Shake256XOF.Expand (domain label then payload parts
// folded into one SHAKE duplex) and DECS/merkle.go's shake16 leaf hashing
// (fixed-width truncated output keyed by a one-byte prefix).
package xof

import "golang.org/x/crypto/sha3"

// Domain tags disambiguate the XOF's uses so no two call sites can collide
// on the same input bytes (spec.md §4.B.1).
const (
	TagMatrixExpand  byte = 0x01 // MinRank public matrix family {M_1..M_k}
	TagSecretExpand  byte = 0x02 // secret witness (alpha, S, C) from seed_sec
	TagPublicSeed    byte = 0x03 // seed_pub := H(seed_sec, TagPublicSeed)
	TagMasterSeed    byte = 0x04 // master_seed := H(seed_sec, salt, message, ...)
	TagSeedTree      byte = 0x05 // GGM tree-PRG child expansion
	TagPartyShare    byte = 0x06 // per-party additive share derivation
	TagCommit        byte = 0x07 // commit(salt, exec_idx, party_idx, payload)
	TagChallenge1    byte = 0x08 // H_1: salt, PK, message, commitments
	TagChallenge2    byte = 0x09 // H_2: salt, h_1, second-round openings
	TagInstanceClose byte = 0x0A // unused: minrank.CloseKey computes y through Commit, under TagCommit
)

// Expand is the one XOF entry point: it writes the domain tag followed by
// every part into a SHAKE-256 duplex and squeezes out length bytes.
func Expand(tag byte, length int, parts ...[]byte) []byte {
	h := sha3.NewShake256()
	_, _ = h.Write([]byte{tag})
	for _, p := range parts {
		_, _ = h.Write(p)
	}
	out := make([]byte, length)
	_, _ = h.Read(out)
	return out
}
