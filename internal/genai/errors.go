package genai

import "errors"

// ErrorKind classifies a service failure for the UI layer.
type ErrorKind string

const (
	// KindQuotaExceeded means the API rejected the call for quota or
	// rate-limit reasons. The UI offers a key switch; the core never
	// retries.
	KindQuotaExceeded ErrorKind = "quota_exceeded"
	// KindUnknown covers every other failure.
	KindUnknown ErrorKind = "unknown"
)

// ServiceError is a classified failure from the generative API.
type ServiceError struct {
	Kind    ErrorKind
	Message string
}

func (e *ServiceError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

// IsQuotaExceeded reports whether err is a quota-exceeded service error.
func IsQuotaExceeded(err error) bool {
	var se *ServiceError
	return errors.As(err, &se) && se.Kind == KindQuotaExceeded
}
