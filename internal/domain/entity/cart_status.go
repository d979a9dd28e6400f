package entity

// CartStatus represents the lifecycle state of a cart.
// The only transition is CartStatusOpen -> CartStatusFinalized, and it is terminal.
type CartStatus string

const (
	// CartStatusOpen indicates the cart accepts mutations.
	CartStatusOpen CartStatus = "open"
	// CartStatusFinalized indicates the cart has been turned into an order
	// and no longer accepts mutations.
	CartStatusFinalized CartStatus = "finalized"
)

// String returns the string representation of the CartStatus.
func (s CartStatus) String() string {
	return string(s)
}

// IsValid checks if the CartStatus is a valid value.
func (s CartStatus) IsValid() bool {
	switch s {
	case CartStatusOpen, CartStatusFinalized:
		return true
	default:
		return false
	}
}
