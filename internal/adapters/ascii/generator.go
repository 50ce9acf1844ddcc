package ascii

import (
	"bufio"
	"math/rand/v2"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/hailam/randfile/internal/adapters/progress"
	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

const (
	// DefaultThreshold selects large-chunk mode for targets above it. It is
	// also the flush interval.
	DefaultThreshold int64 = 50 << 20
	// DefaultLargeChunk is the chunk length above the threshold.
	DefaultLargeChunk = 10 << 20
	// DefaultSmallChunk is the chunk length at or below the threshold.
	DefaultSmallChunk = 4 << 10

	writeBufferSize = 64 << 10
)

// Option configures an AsciiGenerator.
type Option func(*AsciiGenerator)

// WithThreshold overrides the large-chunk threshold and flush interval.
func WithThreshold(n int64) Option {
	return func(g *AsciiGenerator) {
		if n > 0 {
			g.threshold = n
		}
	}
}

// WithChunkSizes overrides the small and large chunk lengths.
func WithChunkSizes(small, large int) Option {
	return func(g *AsciiGenerator) {
		if small > 0 {
			g.smallChunk = small
		}
		if large > 0 {
			g.largeChunk = large
		}
	}
}

// WithProgress sets where large-chunk mode reports progress.
func WithProgress(p ports.ProgressReporter) Option {
	return func(g *AsciiGenerator) {
		if p != nil {
			g.progress = p
		}
	}
}

// AsciiGenerator fills files with random letters and digits.
type AsciiGenerator struct {
	rng        *rand.Rand
	threshold  int64
	smallChunk int
	largeChunk int
	progress   ports.ProgressReporter
}

// New returns a generator drawing from rng.
func New(rng *rand.Rand, opts ...Option) ports.FileGenerator {
	g := &AsciiGenerator{
		rng:        rng,
		threshold:  DefaultThreshold,
		smallChunk: DefaultSmallChunk,
		largeChunk: DefaultLargeChunk,
		progress:   progress.Nop{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes whole chunks to path until at least size bytes are on disk.
// The last chunk is not trimmed, so the file can exceed size by up to one chunk.
func (g *AsciiGenerator) Generate(path string, size int64) (job *ports.GenerationJob, err error) {
	job = &ports.GenerationJob{Name: path, Size: size}

	f, err := os.Create(path)
	if err != nil {
		return job, &ports.IOError{Op: "open", Path: path, Err: err}
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = &ports.IOError{Op: "close", Path: path, Err: cerr}
		}
	}()

	large := size > g.threshold
	chunkLen := g.smallChunk
	if large {
		chunkLen = g.largeChunk
	}
	chunk := make([]byte, chunkLen)
	log.Debug().
		Str("path", path).
		Int64("size", size).
		Int("chunk", len(chunk)).
		Bool("large", large).
		Msg("Writing")

	w := bufio.NewWriterSize(f, writeBufferSize)
	for job.Written < size {
		utils.FillAlphanumeric(g.rng, chunk)
		if _, err := w.Write(chunk); err != nil {
			return job, &ports.IOError{Op: "write", Path: path, Err: err}
		}
		job.Written += int64(len(chunk))

		if large {
			g.progress.Report(job.Written, size)
		}
		if job.Written%g.threshold == 0 {
			log.Debug().Int64("written", job.Written).Msg("Flush")
			if err := w.Flush(); err != nil {
				return job, &ports.IOError{Op: "flush", Path: path, Err: err}
			}
		}
	}
	if large {
		g.progress.Done()
	}

	// Close does not flush a bufio.Writer.
	if err := w.Flush(); err != nil {
		return job, &ports.IOError{Op: "flush", Path: path, Err: err}
	}
	return job, nil
}
