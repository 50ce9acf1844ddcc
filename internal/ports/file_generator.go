package ports

// FileGenerator is the port for anything that can fill a file with random content.
type FileGenerator interface {
	// Generate writes at least sizeBytes bytes to outPath and returns the
	// finished job. The file may overshoot sizeBytes by up to one chunk.
	Generate(outPath string, sizeBytes int64) (*GenerationJob, error)
}

// GenerationJob tracks a single run of a FileGenerator.
type GenerationJob struct {
	Name    string
	Size    int64
	Written int64
}

// Overshoot is the number of bytes written past the requested size.
func (j *GenerationJob) Overshoot() int64 {
	if j.Written > j.Size {
		return j.Written - j.Size
	}
	return 0
}
