package utils

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/hailam/randfile/internal/ports"
	"github.com/hailam/randfile/internal/utils"
)

// UnitSizeParser resolves "<number>[ ]<unit>" specs, unit one of B, KB, MB,
// GB, TB, into a byte count.
type UnitSizeParser struct{}

var _ ports.SizeParser = &UnitSizeParser{}

func NewUnitSizeParser() ports.SizeParser {
	return &UnitSizeParser{}
}

func (p *UnitSizeParser) Parse(spec string) (int64, error) {
	n, err := utils.ParseSize(spec)
	if err != nil {
		return 0, err
	}
	log.Debug().
		Str("spec", spec).
		Int64("bytes", n).
		Str("human", humanize.IBytes(uint64(n))).
		Msg("Size resolved")
	return n, nil
}
