package models

// RequestResult is the terminal outcome of an asynchronous coordinator
// operation. It is immutable once constructed and delivered to the caller's
// callback exactly once. Collaborator failures surface here as data, never as
// panics across the coordinator boundary.
type RequestResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Err preserves the underlying error chain for callers that map
	// failures onto transport codes. Never serialized.
	Err error `json:"-"`
}

// DataResult pairs a RequestResult with a payload that is meaningful only
// when Success is set.
type DataResult[T any] struct {
	RequestResult
	Data T `json:"data,omitempty"`
}

// OK returns a successful RequestResult.
func OK() RequestResult {
	return RequestResult{Success: true}
}

// Fail returns a failed RequestResult carrying the error's message.
func Fail(err error) RequestResult {
	if err == nil {
		return RequestResult{}
	}
	return RequestResult{Message: err.Error(), Err: err}
}

// OKData returns a successful DataResult carrying data.
func OKData[T any](data T) DataResult[T] {
	return DataResult[T]{RequestResult: OK(), Data: data}
}

// FailData returns a failed DataResult with a zero payload.
func FailData[T any](err error) DataResult[T] {
	return DataResult[T]{RequestResult: Fail(err)}
}
