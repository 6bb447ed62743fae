package summarizer

// Formatter defines the interface for formatting a Summary.
type Formatter interface {
	// Format converts a Summary to serialized output.
	Format(summary *Summary) ([]byte, error)
}

// FormatFunc is a function adapter for the Formatter interface.
type FormatFunc func(summary *Summary) ([]byte, error)

// Format implements the Formatter interface.
func (f FormatFunc) Format(summary *Summary) ([]byte, error) {
	return f(summary)
}
