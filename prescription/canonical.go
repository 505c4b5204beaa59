package prescription

import (
	"encoding/binary"
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"
)

// header is the fixed preamble spec.md §4.E mandates, including the
// trailing NUL.
const header = "MIRATH-RX-v1\x00"

// normalizeAll is the one funnel every string field is pushed through
// before encoding, so a future additional normalization form (or a
// stricter form, e.g. NFKC) is a one-line change.
func normalizeAll(s string) string {
	return norm.NFC.String(s)
}

type canonField struct {
	id       byte
	value    []byte
	required bool
}

// Canonicalize renders p into the deterministic byte string the Mirath
// core signs and verifies (spec.md §4.E / §6's canonicalize(prescription)
// -> bytes). Two prescriptions equal field-by-field after NFC
// normalization canonicalize to byte-identical output (spec.md §8.5).
func Canonicalize(p Prescription) ([]byte, error) {
	var quantity []byte
	if p.Quantity > 0 {
		quantity = []byte(strconv.Itoa(p.Quantity))
	}
	fields := []canonField{
		{FieldPatientName, []byte(normalizeAll(p.PatientName)), true},
		{FieldPatientDOB, []byte(normalizeAll(p.PatientDOB)), true},
		{FieldMedication, []byte(normalizeAll(p.Medication)), true},
		{FieldDosage, []byte(normalizeAll(p.Dosage)), true},
		{FieldQuantity, quantity, true},
		{FieldRefills, []byte(strconv.Itoa(p.Refills)), false},
		{FieldPrescriberNPI, []byte(normalizeAll(p.PrescriberNPI)), true},
		{FieldIssuedDate, []byte(normalizeAll(p.IssuedDate)), true},
		{FieldDirections, []byte(normalizeAll(p.Directions)), false},
		{FieldUniqueRxID, []byte(normalizeAll(p.UniqueRxID)), true},
	}

	out := make([]byte, 0, len(header)+64)
	out = append(out, header...)

	for _, f := range fields {
		if f.required && len(f.value) == 0 {
			return nil, fmt.Errorf("prescription: canonicalize field 0x%02x: %w", f.id, ErrMissingField)
		}
		if !f.required && len(f.value) == 0 {
			continue
		}
		out = append(out, f.id)
		var lenBuf [4]byte
		binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(f.value)))
		out = append(out, lenBuf[:]...)
		out = append(out, f.value...)
	}
	return out, nil
}
