package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidQuantity = errors.New("quantity must be a whole number from 0 to 1000")

// ParseQuantity validates a customer-entered screen quantity.
func ParseQuantity(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty input", ErrInvalidQuantity)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidQuantity, raw)
	}
	if n < 0 || n > MaxCount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidQuantity, n)
	}
	return n, nil
}
