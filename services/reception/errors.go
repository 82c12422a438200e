package reception

import "fmt"

// Error codes for faults that cannot be folded into a tool result. Expected
// domain outcomes (unknown room, bad dates, double booking) never surface as
// errors; they come back as success=false results.
const (
	CodeStorage = "storageError"
)

type ServiceError struct {
	Code    string
	Message string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newStorageError(op string, err error) error {
	return &ServiceError{
		Code:    CodeStorage,
		Message: fmt.Sprintf("%s: %v", op, err),
	}
}
