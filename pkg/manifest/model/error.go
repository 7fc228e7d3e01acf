package model

import (
	"errors"
	"fmt"
)

var ErrInvalidParameter = errors.New("")     // Base error for invalid parameter
var ErrDetectionFailure = errors.New("")     // Base error for format detection
var ErrStructuralValidation = errors.New("") // Base error for missing or malformed fields
var ErrDuplicateNaturalKey = errors.New("")  // Base error for natural key collisions
var ErrReferenceResolution = errors.New("")  // Base error for port/vessel/party resolution
var ErrPersistenceFault = errors.New("")     // Base error for store write/read failures
var ErrUnexpectedFault = errors.New("")      // Base error for anything else

// Detection errors
var ErrNoParserFound = fmt.Errorf("no parser can handle the file%w", ErrDetectionFailure)
var ErrEmptyFile = fmt.Errorf("file is empty%w", ErrDetectionFailure)
var ErrUnknownFormat = fmt.Errorf("unknown format%w", ErrDetectionFailure)

// Duplicate errors
var ErrBillOfLadingExists = fmt.Errorf("bill of lading already exists%w", ErrDuplicateNaturalKey)
var ErrContainerExists = fmt.Errorf("container already exists%w", ErrDuplicateNaturalKey)
var ErrVoyageExists = fmt.Errorf("voyage already exists%w", ErrDuplicateNaturalKey)

// Reference resolution errors
var ErrPortCountryUnknown = fmt.Errorf("port country cannot be resolved%w", ErrReferenceResolution)
var ErrVesselNotFound = fmt.Errorf("vessel not found%w", ErrReferenceResolution)
var ErrVesselRequired = fmt.Errorf("vessel_id is required for this format%w", ErrReferenceResolution)

// Store lookups
var ErrPortNotFound = errors.New("port not found")
var ErrPartyNotFound = errors.New("party not found")
var ErrVoyageNotFound = errors.New("voyage not found")
var ErrBillOfLadingNotFound = errors.New("bill of lading not found")
var ErrContainerNotFound = errors.New("container not found")
var ErrImportRecordNotFound = errors.New("import record not found")

// Import record errors
var ErrImportRecordFinalized = fmt.Errorf("import record is already finalized%w", ErrPersistenceFault)

// ErrorKind is the category an error belongs to when it is reported in a ParseResult.
type ErrorKind string

const (
	ErrorKindDetection            ErrorKind = "detection_failure"
	ErrorKindStructuralValidation ErrorKind = "structural_validation"
	ErrorKindDuplicateNaturalKey  ErrorKind = "duplicate_natural_key"
	ErrorKindReferenceResolution  ErrorKind = "reference_resolution"
	ErrorKindPersistence          ErrorKind = "persistence_fault"
	ErrorKindInvalidParameter     ErrorKind = "invalid_parameter"
	ErrorKindUnexpected           ErrorKind = "unexpected_fault"
)

func Classify(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrDetectionFailure):
		return ErrorKindDetection
	case errors.Is(err, ErrStructuralValidation):
		return ErrorKindStructuralValidation
	case errors.Is(err, ErrDuplicateNaturalKey):
		return ErrorKindDuplicateNaturalKey
	case errors.Is(err, ErrReferenceResolution):
		return ErrorKindReferenceResolution
	case errors.Is(err, ErrPersistenceFault):
		return ErrorKindPersistence
	case errors.Is(err, ErrInvalidParameter):
		return ErrorKindInvalidParameter
	default:
		return ErrorKindUnexpected
	}
}

// NewValidationError builds a structural validation error with a human readable location prefix.
func NewValidationError(format string, args ...any) error {
	return fmt.Errorf("%s%w", fmt.Sprintf(format, args...), ErrStructuralValidation)
}

// NewPersistenceError wraps a store failure.
func NewPersistenceError(op string, err error) error {
	return fmt.Errorf("%s: %w%w", op, err, ErrPersistenceFault)
}
