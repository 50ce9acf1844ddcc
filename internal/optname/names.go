package optname

const (
	LoggingLevel = "log-level"
	Name         = "name"
	Seed         = "seed"
	Size         = "size"
	Spinner      = "spinner"
	Verbose      = "verbose"
)
