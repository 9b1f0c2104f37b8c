package create_booking

import (
	"fmt"
	"strings"

	"github.com/uzairqr/SalonBook-Service/internal/domain"
	"github.com/uzairqr/SalonBook-Service/pkg/timegrid"
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
	if strings.TrimSpace(req.TimeLabel) == "" {
		return fmt.Errorf("%w: time label is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.DeviceID) == "" {
		return fmt.Errorf("%w: device id is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.CustomerPhone) == "" {
		return fmt.Errorf("%w: customer phone is required", ErrInvalidInput)
	}

	if req.TimeLabel != domain.TokenTimeLabel {
		if _, _, err := timegrid.ParseSlotLabel(req.TimeLabel); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}
	return nil
}
