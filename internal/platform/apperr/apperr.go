// Package apperr defines the application error taxonomy. Every failure the
// domain services surface carries a stable machine-readable code plus a
// human-readable message; the HTTP layer maps the error kind to a status code.
package apperr

import "errors"

// Kind classifies an error for transport-level status mapping.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindBadRequest
)

// Stable error codes. Add new codes as features are implemented.
const (
	CodePatientNotFound        = "PATIENT_NOT_FOUND"
	CodePatientHasAppointments = "PATIENT_HAS_APPOINTMENTS"

	CodeDoctorNotFound        = "DOCTOR_NOT_FOUND"
	CodeDoctorHasAppointments = "DOCTOR_HAS_APPOINTMENTS"
	CodeDuplicateNPI          = "DUPLICATE_NPI"

	CodeAppointmentNotFound     = "APPOINTMENT_NOT_FOUND"
	CodeAppointmentHasBill      = "APPOINTMENT_HAS_BILL"
	CodeInvalidPatient          = "INVALID_PATIENT"
	CodeInvalidDoctor           = "INVALID_DOCTOR"
	CodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"

	CodeBillNotFound            = "BILL_NOT_FOUND"
	CodeAppointmentNotCompleted = "APPOINTMENT_NOT_COMPLETED"
	CodeBillAlreadyExists       = "BILL_ALREADY_EXISTS"
	CodeUnknownSpecialty        = "UNKNOWN_SPECIALTY"

	CodeBadRequest = "BAD_REQUEST"
)

// Error is a domain error with a stable code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

// NotFound returns an error for a missing referenced entity.
func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

// Conflict returns an error for a uniqueness or idempotency violation.
func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// BadRequest returns an error for a business-rule violation on otherwise
// valid references.
func BadRequest(code, message string) *Error {
	return &Error{Kind: KindBadRequest, Code: code, Message: message}
}

// CodeOf extracts the stable code from err, or "" if err is not an apperr.
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return ""
}

// IsCode reports whether err is an apperr carrying the given code.
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
