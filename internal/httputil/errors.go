package httputil

import "errors"

// Errors returned by BindData. Both are client errors.
var (
	ErrInvalidBody      = errors.New("the request body is not valid JSON. Savings sources, financial records and expenses must be sent as JSON objects")
	ErrRequestBodyEmpty = errors.New("the request body is empty, this endpoint expects a JSON object")
)
