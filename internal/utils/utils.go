package utils

import (
	"math"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/hailam/randfile/internal/ports"
)

const (
	// Alphanumeric is the alphabet used for generated file content.
	Alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// LowerAlphanumeric is the alphabet used for generated file names.
	LowerAlphanumeric = "0123456789abcdefghijklmnopqrstuvwxyz"
)

// Unit multipliers, all binary.
var unitMultipliers = map[string]int64{
	"B":  1,
	"KB": 1 << 10,
	"MB": 1 << 20,
	"GB": 1 << 30,
	"TB": 1 << 40,
}

// ParseSize parses strings like "4kb", "50 MB", "1.5GB" or "1e3kb" into a number of bytes.
// The unit suffix is mandatory; a bare number is rejected.
func ParseSize(sizeStr string) (int64, error) {
	fail := func(reason string, err error) (int64, error) {
		return 0, &ports.ParseError{Input: sizeStr, Reason: reason, Err: err}
	}

	s := strings.ToUpper(strings.TrimSpace(sizeStr))
	if s == "" {
		return fail("size string is empty", nil)
	}

	// Trailing alphabetic run is the unit, everything before it the number.
	split := strings.LastIndexFunc(s, func(r rune) bool {
		return r < 'A' || r > 'Z'
	}) + 1
	unit := s[split:]
	numPart := strings.TrimSpace(s[:split])
	if unit == "" {
		return fail("missing unit suffix (B, KB, MB, GB, TB)", nil)
	}
	if numPart == "" {
		return fail("missing size number", nil)
	}

	magnitude, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return fail("invalid size number", err)
	}
	mult, ok := unitMultipliers[unit]
	if !ok {
		return fail("unknown size suffix '"+unit+"'", nil)
	}
	if magnitude < 0 {
		return fail("size must not be negative", nil)
	}

	bytes := math.Floor(magnitude * float64(mult))
	if math.IsInf(bytes, 0) || math.IsNaN(bytes) || bytes >= math.MaxInt64 {
		return fail("size out of range", nil)
	}
	return int64(bytes), nil
}

// NewRand returns a generator seeded with seed, or from the clock when seed is 0.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// FillAlphanumeric fills buf with characters drawn uniformly from Alphanumeric.
func FillAlphanumeric(r *rand.Rand, buf []byte) {
	const bits, mask = 6, 1<<6 - 1
	i := 0
	for i < len(buf) {
		// Ten 6-bit indices per draw; indices past the alphabet are rejected.
		v := r.Uint64()
		for k := 0; k < 64/bits && i < len(buf); k++ {
			idx := v & mask
			v >>= bits
			if idx < uint64(len(Alphanumeric)) {
				buf[i] = Alphanumeric[idx]
				i++
			}
		}
	}
}

// RandString returns a random string of length n drawn from alphabet.
func RandString(r *rand.Rand, n int, alphabet string) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[r.IntN(len(alphabet))]
	}
	return string(b)
}

// RandName returns a random lowercase alphanumeric name of length n.
func RandName(r *rand.Rand, n int) string {
	return RandString(r, n, LowerAlphanumeric)
}
