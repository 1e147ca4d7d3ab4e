package response

import "net/http"

type Response struct {
	StatusCode int         `json:"status_code"`
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Payload    interface{} `json:"payload,omitempty"`
}

type CustomError struct {
	StatusCode int         `json:"status_code"`
	Status     string      `json:"status"`
	Message    string      `json:"message"`
	Additional interface{} `json:"additional,omitempty"`
}

func (e *CustomError) Error() string {
	return e.Message
}

func GeneralSuccess() *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Status:     "success",
		Message:    "Success",
	}
}

func GeneralSuccessCustomMessageAndPayload(message string, payload interface{}) *Response {
	return &Response{
		StatusCode: http.StatusOK,
		Status:     "success",
		Message:    message,
		Payload:    payload,
	}
}

func CreatedSuccessWithPayload(payload interface{}) *Response {
	return &Response{
		StatusCode: http.StatusCreated,
		Status:     "success",
		Message:    "Resource created successfully",
		Payload:    payload,
	}
}

func BadRequestError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusBadRequest,
		Status:     "error",
		Message:    message,
	}
}

func NotFoundError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusNotFound,
		Status:     "error",
		Message:    message,
	}
}

func DuplicateKeyError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusConflict,
		Status:     "error",
		Message:    message,
	}
}

// ExternalServiceError wraps failures from market-data, retrieval, storage
// and classification backends so they surface as structured results instead
// of tearing down the request.
func ExternalServiceError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusBadGateway,
		Status:     "error",
		Message:    message,
	}
}

func RepositoryError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     "error",
		Message:    message,
	}
}

func GeneralError(message string) *CustomError {
	return &CustomError{
		StatusCode: http.StatusInternalServerError,
		Status:     "error",
		Message:    message,
	}
}

func UnauthorizedErrorWithAdditionalInfo(additional interface{}, messages ...string) *CustomError {
	message := "Unauthorized"
	if len(messages) > 0 {
		message = messages[0]
	}
	return &CustomError{
		StatusCode: http.StatusUnauthorized,
		Status:     "error",
		Message:    message,
		Additional: additional,
	}
}
