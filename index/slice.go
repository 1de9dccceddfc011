package index

import (
	"strconv"
	"strings"

	"github.com/morriswmz/jasmal/jerr"
)

// ParseSlice parses a Python-style "start:stop:step" slice string against an
// axis of the given length, per spec.md section 4.5. Parts may be empty.
// step defaults to 1 and must be a non-zero integer. Omitted start/stop
// defaults depend on step's sign: start defaults to 0 for positive step,
// length-1 for negative; stop defaults to length for positive step, -1 for
// negative. A single scalar "k" (no colon) degenerates to a Constant.
func ParseSlice(spec string, length int) (Iterator, error) {
	if !strings.Contains(spec, ":") {
		k, err := strconv.Atoi(strings.TrimSpace(spec))
		if err != nil {
			return nil, jerr.Indexf("invalid slice/index %q: %v", spec, err)
		}
		k = normalizeIndex(k, length)
		if k < 0 || k >= length {
			return nil, jerr.Indexf("index %d out of bounds for axis of length %d", k, length)
		}
		return NewConstant(k), nil
	}

	parts := strings.Split(spec, ":")
	if len(parts) > 3 {
		return nil, jerr.Indexf("invalid slice syntax %q: too many ':' separators", spec)
	}
	for len(parts) < 3 {
		parts = append(parts, "")
	}

	step := 1
	if strings.TrimSpace(parts[2]) != "" {
		v, err := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err != nil {
			return nil, jerr.Indexf("invalid slice step %q: %v", parts[2], err)
		}
		step = v
	}
	if step == 0 {
		return nil, jerr.Indexf("slice step must be non-zero")
	}

	positive := step > 0

	start, err := parseBound(parts[0], length, defaultStart(positive, length))
	if err != nil {
		return nil, jerr.Indexf("invalid slice start %q: %v", parts[0], err)
	}
	stop, err := parseBound(parts[1], length, defaultStop(positive, length))
	if err != nil {
		return nil, jerr.Indexf("invalid slice stop %q: %v", parts[1], err)
	}

	if positive {
		start = clamp(normalizeIndex(start, length), 0, length)
		if strings.TrimSpace(parts[1]) != "" {
			stop = clamp(normalizeIndex(stop, length), 0, length)
		}
		return NewAscendingRange(start, stop, step)
	}

	start = clamp(normalizeIndex(start, length), -1, length-1)
	if strings.TrimSpace(parts[1]) != "" {
		stop = clampLow(normalizeIndex(stop, length))
	}
	return NewDescendingRange(start, stop, -step)
}

func defaultStart(positive bool, length int) int {
	if positive {
		return 0
	}
	return length - 1
}

func defaultStop(positive bool, length int) int {
	if positive {
		return length
	}
	return -1
}

func parseBound(s string, length, def int) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// normalizeIndex adds length once for a negative index, per spec.md section
// 4.5's negative-to-positive rewrite rule.
func normalizeIndex(i, length int) int {
	if i < 0 {
		return i + length
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampLow(v int) int {
	if v < -1 {
		return -1
	}
	return v
}
