package pebblegame

// MoveOption configures a single Restrict/Expand/Composite call. The
// three knobs (record, mark, tag) are independent of one another.
type MoveOption func(*moveConfig)

// moveConfig is the resolved configuration for one move call.
type moveConfig struct {
	record bool
	mark   bool
	tag    int
}

// defaultMoveConfig is tag=0, record=true, mark=true.
func defaultMoveConfig() moveConfig {
	return moveConfig{record: true, mark: true, tag: 0}
}

func resolveMoveConfig(opts ...MoveOption) moveConfig {
	cfg := defaultMoveConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Record controls whether the move appends an edge to the game-state graph.
func Record(record bool) MoveOption {
	return func(c *moveConfig) { c.record = record }
}

// Mark controls whether the move sets the source state's visited flag.
func Mark(mark bool) MoveOption {
	return func(c *moveConfig) { c.mark = mark }
}

// Tag sets the opaque client tag carried into successor states.
func Tag(tag int) MoveOption {
	return func(c *moveConfig) { c.tag = tag }
}
