// Package beam models a 1d beam: ordered nodes annotated with supports,
// joints, loads and dimension points, together with the span geometry and
// visual load scaling a diagram is laid out from.
package beam

import (
	"fmt"
	"math"
	"strconv"
)

// A Label carries annotation text and display-only offsets. The property
// map is passed through to the drawing backend untouched.
type Label struct {
	Text    string
	XOffset float64
	YOffset float64
	Props   map[string]string
}

// MakeLabel wraps plain text in a Label.
func MakeLabel(text string) *Label {
	return &Label{Text: text}
}

// A Node is a location on the beam's local axis. Node order in a beam's
// list is authoritative: spans are measured between consecutive list
// entries, never on sorted order.
type Node struct {
	X     float64
	Label *Label
}

// NewNode returns a node at x, labelled when text is non-empty.
func NewNode(x float64, text string) *Node {
	n := &Node{X: x}
	if text != "" {
		n.Label = MakeLabel(text)
	}
	return n
}

// Fixity is the closed set of support and joint symbol kinds. Its names
// double as lookup keys into a symbol source.
type Fixity int

const (
	HRoller Fixity = iota
	VRoller
	Pinned
	Fixed
	HSpring
	VSpring
	MSpring
	TSpring
)

var fixityNames = map[Fixity]string{
	HRoller: "H_ROLLER",
	VRoller: "V_ROLLER",
	Pinned:  "PINNED",
	Fixed:   "FIXED",
	HSpring: "H_SPRING",
	VSpring: "V_SPRING",
	MSpring: "M_SPRING",
	TSpring: "T_SPRING",
}

func (f Fixity) String() string {
	if s, ok := fixityNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Fixity(%d)", int(f))
}

// ParseFixity resolves a fixity name such as "PINNED" or "H_ROLLER".
func ParseFixity(name string) (Fixity, error) {
	for f, s := range fixityNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown fixity %q", name)
}

// UnresolvedReferenceError reports a support, joint, load or dimension
// location that matches no node of the beam. It is raised at construction
// time; a beam is never built with dangling references.
type UnresolvedReferenceError struct {
	Ref string
}

func (e *UnresolvedReferenceError) Error() string {
	return fmt.Sprintf("location %s does not resolve to any beam node", e.Ref)
}

// A NodeRef names a node either by numeric position (value equality on x)
// or by label text. It is resolved against the beam's node list during
// construction.
type NodeRef struct {
	x       float64
	label   string
	byLabel bool
}

// AtX references the node at position x.
func AtX(x float64) NodeRef {
	return NodeRef{x: x}
}

// ByLabel references the node whose label text equals name.
func ByLabel(name string) NodeRef {
	return NodeRef{label: name, byLabel: true}
}

func (r NodeRef) String() string {
	if r.byLabel {
		return strconv.Quote(r.label)
	}
	return "x=" + strconv.FormatFloat(r.x, 'g', -1, 64)
}

func (r NodeRef) resolve(nodes []*Node) (*Node, error) {
	for _, n := range nodes {
		if r.byLabel {
			if n.Label != nil && n.Label.Text == r.label {
				return n, nil
			}
		} else if n.X == r.x {
			return n, nil
		}
	}
	return nil, &UnresolvedReferenceError{Ref: r.String()}
}

// A Support is a fixity symbol attached to one of the beam's nodes.
// It references the node; it does not own it.
type Support struct {
	Node   *Node
	Fixity Fixity
	Label  *Label
}

// A Joint is an internal connection on the beam. A Fixed joint draws
// nothing (the beam is continuous there).
type Joint struct {
	Node   *Node
	Fixity Fixity
	Label  *Label
}

// A Load is a point load, distributed load or point moment applied to the
// beam. End being set makes the load distributed; Moment takes precedence
// over End. A distributed load without EndMagnitude is uniform at
// Magnitude. Alpha is the angle in degrees of deviation from vertical,
// ignored for moments.
type Load struct {
	Magnitude    float64
	Start        *Node
	End          *Node
	EndMagnitude *float64
	Moment       bool
	Alpha        float64
	Label        *Label
}

// SupportSpec and friends are the raw, unresolved forms a beam is
// constructed from. Resolution happens once, in New; the resulting values
// are fully linked and never mutated afterwards.
type SupportSpec struct {
	At     NodeRef
	Fixity Fixity
	Label  *Label
}

type JointSpec struct {
	At     NodeRef
	Fixity Fixity
	Label  *Label
}

type LoadSpec struct {
	Magnitude    float64
	Start        NodeRef
	End          *NodeRef
	EndMagnitude *float64
	Moment       bool
	Alpha        float64
	Label        string
}

// Spec describes a beam to construct. Nodes are the source of truth for
// span geometry; every other entry must resolve into them.
type Spec struct {
	Nodes      []*Node
	Supports   []SupportSpec
	Joints     []JointSpec
	Loads      []LoadSpec
	Depth      float64
	Dimensions []NodeRef
}

// A Beam is a fully resolved, immutable diagram model.
type Beam struct {
	Nodes      []*Node
	Supports   []Support
	Joints     []Joint
	Loads      []Load
	Depth      float64
	Dimensions []*Node
}

// New resolves a spec into a beam. Any support, joint, load or dimension
// location that matches no node fails construction with
// UnresolvedReferenceError; nothing is silently dropped.
func New(spec Spec) (*Beam, error) {
	b := &Beam{
		Nodes: spec.Nodes,
		Depth: spec.Depth,
	}
	for _, s := range spec.Supports {
		n, err := s.At.resolve(b.Nodes)
		if err != nil {
			return nil, fmt.Errorf("support: %w", err)
		}
		b.Supports = append(b.Supports, Support{Node: n, Fixity: s.Fixity, Label: s.Label})
	}
	for _, j := range spec.Joints {
		n, err := j.At.resolve(b.Nodes)
		if err != nil {
			return nil, fmt.Errorf("joint: %w", err)
		}
		b.Joints = append(b.Joints, Joint{Node: n, Fixity: j.Fixity, Label: j.Label})
	}
	for _, l := range spec.Loads {
		start, err := l.Start.resolve(b.Nodes)
		if err != nil {
			return nil, fmt.Errorf("load: %w", err)
		}
		ld := Load{
			Magnitude:    l.Magnitude,
			Start:        start,
			EndMagnitude: l.EndMagnitude,
			Moment:       l.Moment,
			Alpha:        l.Alpha,
		}
		if l.End != nil {
			end, err := l.End.resolve(b.Nodes)
			if err != nil {
				return nil, fmt.Errorf("load: %w", err)
			}
			ld.End = end
		}
		if l.Label != "" {
			ld.Label = MakeLabel(l.Label)
		}
		b.Loads = append(b.Loads, ld)
	}
	for _, d := range spec.Dimensions {
		n, err := d.resolve(b.Nodes)
		if err != nil {
			return nil, fmt.Errorf("dimension: %w", err)
		}
		b.Dimensions = append(b.Dimensions, n)
	}
	return b, nil
}

// Spans returns the distances between consecutive nodes in list order,
// length node-count-1. Beams with fewer than two nodes have no spans.
func (b *Beam) Spans() []float64 {
	if len(b.Nodes) < 2 {
		return nil
	}
	spans := make([]float64, 0, len(b.Nodes)-1)
	prev := b.Nodes[0].X
	for _, n := range b.Nodes[1:] {
		spans = append(spans, math.Abs(n.X-prev))
		prev = n.X
	}
	return spans
}

// Length returns the sum of all spans; 0 for fewer than two nodes.
func (b *Beam) Length() float64 {
	total := 0.0
	for _, s := range b.Spans() {
		total += s
	}
	return total
}

// NodesFromSpans builds a node list from span lengths, starting at 0.
// When labels are given there must be one per node (spans + 1).
func NodesFromSpans(spans []float64, labels []string) ([]*Node, error) {
	if labels != nil && len(labels) != len(spans)+1 {
		return nil, fmt.Errorf(
			"want %d labels for %d spans, got %d", len(spans)+1, len(spans), len(labels))
	}
	label := func(i int) string {
		if labels == nil {
			return ""
		}
		return labels[i]
	}
	nodes := []*Node{NewNode(0, label(0))}
	x := 0.0
	for i, span := range spans {
		x += span
		nodes = append(nodes, NewNode(x, label(i+1)))
	}
	return nodes, nil
}
