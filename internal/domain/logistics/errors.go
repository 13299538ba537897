package logistics

import "errors"

// Domain errors for shipment pricing and scheduling

var (
	// ErrRouteNotFound is returned when no route exists between two regions
	ErrRouteNotFound = errors.New("no shipping route between regions")

	// ErrMethodNotAvailable is returned when a route does not offer the
	// requested method
	ErrMethodNotAvailable = errors.New("shipping method not available on route")

	// ErrInvalidShipment is returned when weight or volume is not positive
	ErrInvalidShipment = errors.New("invalid shipment dimensions")
)
