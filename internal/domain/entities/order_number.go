package entities

import (
	"fmt"
	"regexp"
	"strconv"
)

// Order numbers are human-readable identifiers of the form ORD-047: a fixed
// prefix plus a zero-padded (minimum 3 digits) strictly increasing integer.
// Gaps are tolerated; duplicates are not.

const OrderNumberPrefix = "ORD-"

var orderNumberPattern = regexp.MustCompile(`^ORD-(\d+)$`)

// FormatOrderNumber renders sequence value n as an order number.
func FormatOrderNumber(n int) string {
	return fmt.Sprintf("%s%03d", OrderNumberPrefix, n)
}

// ParseOrderNumberSuffix extracts the numeric suffix of an order number.
// The second return value is false when the input does not match the format.
func ParseOrderNumberSuffix(orderNumber string) (int, bool) {
	m := orderNumberPattern.FindStringSubmatch(orderNumber)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// MaxOrderNumberSuffix returns the highest numeric suffix among the given
// order numbers, or 0 when none match the format. Used once, to seed the
// atomic counter from orders created before counter-based allocation.
func MaxOrderNumberSuffix(orderNumbers []string) int {
	max := 0
	for _, on := range orderNumbers {
		if n, ok := ParseOrderNumberSuffix(on); ok && n > max {
			max = n
		}
	}
	return max
}
