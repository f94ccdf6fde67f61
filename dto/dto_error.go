package dto

type ErrorResponse struct {
	Msg string `json:"msg"`
}

// Body-validation failures are rendered as an array of {msg, param}
// entries, one per failing field.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param,omitempty"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}
