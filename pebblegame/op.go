package pebblegame

// OpKind distinguishes the two primitive moves foldable by Composite.
type OpKind int

const (
	// OpRestrict places Op.Pebble on Op.Node.
	OpRestrict OpKind = iota
	// OpExpand lifts Op.Pebble. Op.Node is ignored.
	OpExpand
)

// Op is one step of a Composite sequence: either a restrict of Pebble
// onto Node, or an expand of Pebble (Node is ignored).
type Op struct {
	Kind   OpKind
	Pebble int
	Node   int
}

// RestrictOp builds an OpRestrict step.
func RestrictOp(pebble, node int) Op {
	return Op{Kind: OpRestrict, Pebble: pebble, Node: node}
}

// ExpandOp builds an OpExpand step.
func ExpandOp(pebble int) Op {
	return Op{Kind: OpExpand, Pebble: pebble}
}
