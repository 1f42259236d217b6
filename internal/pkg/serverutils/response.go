package serverutils

// Response is the common success envelope.
type Response[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

// ErrorBody is the common error envelope. Kind is machine-readable;
// Message is for humans.
type ErrorBody struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, kind, message string) ErrorBody {
	return ErrorBody{
		Success: false,
		Code:    code,
		Kind:    kind,
		Message: message,
	}
}
