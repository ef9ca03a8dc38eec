package richtext

// ExtractOptions holds configuration for parsing.
type ExtractOptions struct {
	// Group nesting limit enforced by the parser.
	maxGroupDepth int

	// Code page used for \'xx escapes before the document declares one;
	// 0 means the RTF default (Windows-1252).
	codePage int
}

// defaultOptions returns the default parsing options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		maxGroupDepth: 0, // 0 means the parser's own default
		codePage:      0,
	}
}

// clone creates a copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	return ExtractOptions{
		maxGroupDepth: o.maxGroupDepth,
		codePage:      o.codePage,
	}
}
