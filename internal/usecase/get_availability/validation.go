package get_availability

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ChannelName == "" {
		return fmt.Errorf("%w: channel name is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if !req.Context.IsValid() {
		return fmt.Errorf("%w: unknown view context %q", ErrInvalidInput, req.Context)
	}

	return nil
}
