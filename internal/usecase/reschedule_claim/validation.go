package reschedule_claim

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ChannelID == "" {
		return fmt.Errorf("%w: channel id is required", ErrInvalidInput)
	}

	if req.Date.IsZero() || req.NewDate.IsZero() {
		return fmt.Errorf("%w: both dates are required", ErrInvalidInput)
	}

	if req.Hour == "" || req.NewHour == "" {
		return fmt.Errorf("%w: both hours are required", ErrInvalidInput)
	}

	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}

	if !req.Kind.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, req.Kind)
	}

	return nil
}
