package annot

// DefaultSearchWindow is the default number of candidate offsets probed when
// locating a node's raw text.
const DefaultSearchWindow = 3

// Options holds configuration for an annotation pass.
type Options struct {
	// SearchWindow is the number of byte offsets probed leftward from the
	// parser-reported position when locating a node's raw text. The
	// upstream parser's positions are off by at most a couple of bytes
	// (leading whitespace or operator tokens); the default of 3 covers the
	// observed cases. Values below 1 use DefaultSearchWindow.
	SearchWindow int
}

// applyDefaults fills in default values for unset Options fields.
func (o *Options) applyDefaults() {
	if o.SearchWindow < 1 {
		o.SearchWindow = DefaultSearchWindow
	}
}
