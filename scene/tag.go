// Package scene provides the view tree drawn into a framebuffer each frame.
//
// A Scene owns an ordered list of views (panels and text boxes, which may
// nest) and draws them in insertion order, so later views paint over
// earlier ones. Views are positioned once, at construction, against the
// Layout of their parent: percentage margins are resolved then and every
// view stores only its absolute bounds, never a reference to its parent.
package scene

// Kind identifies the concrete type of a View.
type Kind uint8

// View kinds.
const (
	KindScene Kind = iota
	KindPanel
	KindTextBox
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindScene:
		return "Scene"
	case KindPanel:
		return "Panel"
	case KindTextBox:
		return "TextBox"
	default:
		return "Unknown"
	}
}
