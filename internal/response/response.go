package response

// Response is the uniform envelope returned by every endpoint body.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  []string    `json:"errors,omitempty"`
}

// OK builds a success envelope.
func OK(message string, data interface{}) Response {
	return Response{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// Fail builds a failure envelope without field-level detail.
func Fail(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// FailWith builds a failure envelope carrying field-level messages.
func FailWith(message string, errs []string) Response {
	return Response{
		Success: false,
		Message: message,
		Errors:  errs,
	}
}
