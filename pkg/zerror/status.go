package zerror

// Status classifies an error independently of any transport. The HTTP layer
// maps it to a status code.
type Status uint8

const (
	StatusUnknown Status = iota
	StatusBadRequest
	StatusValidationFailed
	StatusUnauthorized
	StatusForbidden
	StatusNotFound
	StatusConflict
	StatusUnprocessableEntity
	StatusTooManyRequests
	StatusInternalServerError
	StatusTimeout
	StatusNotImplemented
	StatusBadGateway
	StatusServiceUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusBadRequest:
		return "bad_request"
	case StatusValidationFailed:
		return "validation_failed"
	case StatusUnauthorized:
		return "unauthorized"
	case StatusForbidden:
		return "forbidden"
	case StatusNotFound:
		return "not_found"
	case StatusConflict:
		return "conflict"
	case StatusUnprocessableEntity:
		return "unprocessable_entity"
	case StatusTooManyRequests:
		return "too_many_requests"
	case StatusInternalServerError:
		return "internal_server_error"
	case StatusTimeout:
		return "timeout"
	case StatusNotImplemented:
		return "not_implemented"
	case StatusBadGateway:
		return "bad_gateway"
	case StatusServiceUnavailable:
		return "service_unavailable"
	default:
		return "unknown"
	}
}
