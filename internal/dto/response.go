package dto

// Response is the JSON envelope every endpoint answers with.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// OK wraps data in a successful envelope.
func OK(message string, data any) Response {
	return Response{Success: true, Message: message, Data: data}
}

// List wraps a collection and its length.
func List[T any](items []T) Response {
	n := len(items)
	if items == nil {
		items = []T{}
	}
	return Response{Success: true, Count: &n, Data: items}
}

// Fail builds an error envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}
