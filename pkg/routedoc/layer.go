package routedoc

import "fmt"

// LayerKind discriminates the entries of a router stack
type LayerKind int

const (
	// LayerUnset entries take their kind from the fields they carry
	LayerUnset LayerKind = iota
	// LayerMiddleware entries contribute no routes
	LayerMiddleware
	// LayerRoute entries are leaves with a path and methods
	LayerRoute
	// LayerRouter entries are interior nodes with a prefix and a child stack
	LayerRouter
)

// String returns the snapshot name of the kind
func (k LayerKind) String() string {
	switch k {
	case LayerUnset:
		return ""
	case LayerMiddleware:
		return "middleware"
	case LayerRoute:
		return "route"
	case LayerRouter:
		return "router"
	default:
		return fmt.Sprintf("LayerKind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler
func (k LayerKind) MarshalText() ([]byte, error) {
	switch k {
	case LayerUnset, LayerMiddleware, LayerRoute, LayerRouter:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("unknown layer kind %d", int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *LayerKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*k = LayerUnset
	case "middleware":
		*k = LayerMiddleware
	case "route":
		*k = LayerRoute
	case "router", "nested":
		*k = LayerRouter
	default:
		return fmt.Errorf("unknown layer kind %q", string(text))
	}
	return nil
}
