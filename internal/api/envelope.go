package api

// Error codes shared across all endpoints.
const (
	CodeOK       = "00"
	CodeBadInput = "400"
	CodeConflict = "409"
)

// Envelope is the uniform response body returned by every endpoint. Business
// failures are reported through it with success=false; only infrastructure
// faults surface as transport-level errors.
type Envelope struct {
	Success      bool   `json:"success"`
	CodError     string `json:"cod_error"`
	MessageError string `json:"message_error"`
	Data         any    `json:"data"`
}

// OK wraps payload data in a successful envelope.
func OK(data any) Envelope {
	return Envelope{Success: true, CodError: CodeOK, MessageError: "", Data: data}
}

// Fail builds a failure envelope with the given code and message.
func Fail(code, message string) Envelope {
	return Envelope{Success: false, CodError: code, MessageError: message, Data: struct{}{}}
}
