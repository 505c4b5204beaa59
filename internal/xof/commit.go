package xof

import "encoding/binary"

// Commit binds a party's full state within one execution of the MPC-in-the-
// Head protocol. Grounded on DECS/merkle.go's leaf-hashing convention: a
// fixed-width prefix (here exec/party indices instead of a single leaf-type
// byte) folded ahead of the payload, then truncated SHAKE-256 output.
func Commit(salt []byte, execIdx, partyIdx int, payload []byte, digestLen int) []byte {
	var idxBuf [8]byte
	binary.LittleEndian.PutUint32(idxBuf[0:4], uint32(execIdx))
	binary.LittleEndian.PutUint32(idxBuf[4:8], uint32(partyIdx))
	return Expand(TagCommit, digestLen, salt, idxBuf[:], payload)
}
