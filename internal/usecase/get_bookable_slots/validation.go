package get_bookable_slots

import (
	"fmt"
	"strings"
)

// validateRequest проверяет корректность запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}
	if strings.TrimSpace(req.SalonName) == "" {
		return fmt.Errorf("%w: salon name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.ServiceName) == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	return nil
}
