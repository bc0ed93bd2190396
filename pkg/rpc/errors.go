package rpc

// JSON-RPC error codes. The tool-level codes mirror their HTTP equivalents;
// the -32xxx codes are the JSON-RPC 2.0 reserved range.
const (
	CodeMissingParams  = 400
	CodeNotFound       = 404
	CodeMethodNotFound = -32601
	CodeServerError    = -32000
)

// Error is a dispatch failure that maps directly onto a JSON-RPC error
// object. Failures that are not an *Error surface as CodeServerError.
type Error struct {
	Code    int
	Message string
	Data    any
}

func (e *Error) Error() string {
	return e.Message
}

func errToolNotFound() *Error {
	return &Error{Code: CodeNotFound, Message: "Tool not found"}
}

func errMissingParams() *Error {
	return &Error{Code: CodeMissingParams, Message: "Missing params"}
}

func errDeviceNotFound() *Error {
	return &Error{Code: CodeNotFound, Message: "Device not found"}
}
