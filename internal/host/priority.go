package host

import "strconv"

// Priority tells the host whether and how strongly a factory wants to serve
// a request.
type Priority int

const (
	// Unable means the factory does not handle the request.
	Unable Priority = 0

	// StandardPriority is what the standard factory returns. Plugins that
	// want to replace the standard treatment return a larger value.
	StandardPriority Priority = 100
)

func (p Priority) CanServe() bool { return p > Unable }

// Overrides reports whether p takes precedence over the standard factory.
func (p Priority) Overrides() bool { return p > StandardPriority }

func (p Priority) String() string {
	if !p.CanServe() {
		return "Unable"
	}
	return strconv.Itoa(int(p))
}
