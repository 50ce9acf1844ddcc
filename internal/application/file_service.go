package application

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/hailam/randfile/internal/ports"
)

// FileService orchestrates file generation by parsing sizes and
// invoking the generator.
type FileService struct {
	generator ports.FileGenerator
	parser    ports.SizeParser
	out       io.Writer
}

// NewFileService constructs a FileService. The startup line is written to out.
func NewFileService(generator ports.FileGenerator, parser ports.SizeParser, out io.Writer) *FileService {
	return &FileService{generator: generator, parser: parser, out: out}
}

// CreateFile generates name with at least sizeSpec (e.g., "4kb") bytes of
// random content.
func (s *FileService) CreateFile(name, sizeSpec string) (*ports.GenerationJob, error) {
	// 1. Parse human-readable size into bytes
	sizeBytes, err := s.parser.Parse(sizeSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid size '%s': %w", sizeSpec, err)
	}

	// 2. Announce
	fmt.Fprintf(s.out, "generate %s %dB\n", name, sizeBytes)
	log.Info().
		Str("name", name).
		Str("size", humanize.IBytes(uint64(sizeBytes))).
		Msg("Generating")

	// 3. Invoke the generator
	start := time.Now()
	job, err := s.generator.Generate(name, sizeBytes)
	if err != nil {
		return job, fmt.Errorf("failed to generate %s: %w", name, err)
	}

	elapsed := time.Since(start)
	event := log.Info().
		Str("name", name).
		Str("written", humanize.IBytes(uint64(job.Written))).
		Dur("elapsed", elapsed)
	if over := job.Overshoot(); over > 0 {
		event = event.Int64("overshoot_bytes", over)
	}
	event.Msg("Complete")
	return job, nil
}
