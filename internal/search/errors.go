package search

type ErrorCode string

const (
	ErrorCodeValidation ErrorCode = "VALIDATION"
)
