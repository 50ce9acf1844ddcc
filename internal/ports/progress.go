package ports

// ProgressReporter receives write progress from a FileGenerator.
type ProgressReporter interface {
	// Report is called after each chunk with the running total and the target.
	Report(written, total int64)
	// Done is called once the last chunk has been written.
	Done()
}
