package indicator

import (
	"strings"

	"github.com/druarnfield/whirl/internal/style"
)

// Kind distinguishes element nodes from visually-hidden text nodes.
type Kind int

const (
	KindElement Kind = iota
	KindVisuallyHidden
)

// String returns the human-readable name for a Kind.
func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindVisuallyHidden:
		return "visually-hidden"
	default:
		return "unknown"
	}
}

// Node is one element of a render tree.
type Node struct {
	Kind      Kind
	Element   Element
	Label     string
	Style     style.StyleMap
	Animation *style.Animation
	Attrs     map[string]string
	Text      string
	Children  []Node
}

// visuallyHiddenStyle keeps content in the accessibility tree with no
// visual footprint.
func visuallyHiddenStyle() style.StyleMap {
	return style.StyleMap{
		"border":     "0",
		"clip":       "rect(0, 0, 0, 0)",
		"height":     "1px",
		"width":      "1px",
		"margin":     "-1px",
		"padding":    "0",
		"overflow":   "hidden",
		"whiteSpace": "nowrap",
		"position":   "absolute",
	}
}

// VisuallyHidden returns a text node present only to assistive technology.
func VisuallyHidden(text string) Node {
	return Node{
		Kind:    KindVisuallyHidden,
		Element: Tag("span"),
		Style:   visuallyHiddenStyle(),
		Text:    text,
	}
}

// AccessibleText returns the text of every visually-hidden descendant,
// space separated.
func (n Node) AccessibleText() string {
	var parts []string
	var walk func(Node)
	walk = func(n Node) {
		if n.Kind == KindVisuallyHidden && n.Text != "" {
			parts = append(parts, n.Text)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return strings.Join(parts, " ")
}
