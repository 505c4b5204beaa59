// Package prescription implements spec.md §4.E: the deterministic
// canonical byte encoding signed by the Mirath core, and a concrete Go
// struct for the prescription data a physician/pharmacist workflow
// carries (spec.md's "structured prescription" is otherwise abstract).
// Grounded on credential/ (the teacher's issuance-claim encoding) for
// the shape of a field-id/length-prefix record, generalized from a
// fixed five-field credential to this ten-field registry.
package prescription

import "errors"

// ErrMissingField is returned when Canonicalize is given a prescription
// lacking a value for one of the required fields (spec.md §7).
var ErrMissingField = errors.New("prescription: missing required field")

// ErrUnknownField guards the inverse direction: a caller-supplied field
// id outside the registry below. Canonicalize never produces one itself;
// this exists for symmetry with a future raw-field-map entry point.
var ErrUnknownField = errors.New("prescription: unknown field id")

// Field ids, fixed order, spec.md §4.E: "for each field in fixed order
// field_id(1) || len(4) || utf8_bytes."
const (
	FieldPatientName   byte = 0x01
	FieldPatientDOB    byte = 0x02
	FieldMedication    byte = 0x03
	FieldDosage        byte = 0x04
	FieldQuantity      byte = 0x05
	FieldRefills       byte = 0x06
	FieldPrescriberNPI byte = 0x07
	FieldIssuedDate    byte = 0x08
	FieldDirections    byte = 0x09
	FieldUniqueRxID    byte = 0x0A
)

// Prescription is the concrete record signed and verified by this
// repository. PatientDOB and IssuedDate are free-form strings (the core
// does not validate calendar semantics, only that they are present and
// NFC-normalizable); Quantity and Refills are plain decimal counts.
type Prescription struct {
	PatientName   string
	PatientDOB    string
	Medication    string
	Dosage        string
	Quantity      int
	Refills       int
	PrescriberNPI string
	IssuedDate    string
	Directions    string
	UniqueRxID    string
}
