package chartservice

import "fmt"

// ErrorKind classifies validation failures so tests and callers can
// distinguish them without string matching.
type ErrorKind string

const (
	ErrDataParse     ErrorKind = "DataParseError"
	ErrWordDataParse ErrorKind = "WordDataParseError"
	ErrMissingParam  ErrorKind = "MissingParameterError"
	ErrEmptyParam    ErrorKind = "EmptyParameterError"
	ErrEmptyDataset  ErrorKind = "EmptyDatasetError"
	ErrProcessing    ErrorKind = "ProcessingError"
)

// ValidationError is the domain error produced by the input normalizer.
// It is always resolved locally into a failure envelope and never
// propagates to the transport layer.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func dataParseErr(err error) *ValidationError {
	return &ValidationError{Kind: ErrDataParse, Message: fmt.Sprintf("failed to parse data: %v", err)}
}

func wordDataParseErr(err error) *ValidationError {
	return &ValidationError{Kind: ErrWordDataParse, Message: fmt.Sprintf("failed to parse word data: %v", err)}
}

func missingParamErr(field string) *ValidationError {
	return &ValidationError{Kind: ErrMissingParam, Message: fmt.Sprintf("parameter '%s' is required", field)}
}

func emptyParamErr(field string) *ValidationError {
	return &ValidationError{Kind: ErrEmptyParam, Message: fmt.Sprintf("parameter '%s' must not be null", field)}
}

func emptyDatasetErr(field string) *ValidationError {
	return &ValidationError{Kind: ErrEmptyDataset, Message: fmt.Sprintf("parameter '%s' contains no rows", field)}
}

func processingErr(v any) *ValidationError {
	return &ValidationError{Kind: ErrProcessing, Message: fmt.Sprintf("data processing failed: %v", v)}
}
