package cli

import (
	"strconv"
	"strings"

	"github.com/yaklabco/jfmt/pkg/format"
)

// byteRanges pairs the --offset and --length flags into source ranges.
func byteRanges(offsets, lengths []int) ([]format.Range, error) {
	if len(offsets) != len(lengths) {
		return nil, usageErrorf("--offset given %d times but --length %d times", len(offsets), len(lengths))
	}
	ranges := make([]format.Range, 0, len(offsets))
	for i, off := range offsets {
		if off < 0 || lengths[i] < 0 {
			return nil, usageErrorf("invalid range: offset %d, length %d", off, lengths[i])
		}
		ranges = append(ranges, format.Range{Start: off, End: off + lengths[i]})
	}
	return ranges, nil
}

// lineRanges converts "start:end" specs, 1-based and inclusive, into byte
// ranges of src. A bare "n" selects one line. An end past the last line is
// clamped.
func lineRanges(src []byte, specs []string) ([]format.Range, error) {
	if len(specs) == 0 {
		return nil, nil
	}
	starts := lineStarts(src)
	count := len(starts)
	if count > 0 && starts[count-1] == len(src) {
		count--
	}

	ranges := make([]format.Range, 0, len(specs))
	for _, spec := range specs {
		first, last, err := parseLineSpec(spec)
		if err != nil {
			return nil, err
		}
		if first > count {
			return nil, usageErrorf("--lines %s: input has %d lines", spec, count)
		}
		last = min(last, count)
		end := len(src)
		if last < len(starts) {
			end = starts[last]
		}
		ranges = append(ranges, format.Range{Start: starts[first-1], End: end})
	}
	return ranges, nil
}

func parseLineSpec(spec string) (int, int, error) {
	lo, hi, found := strings.Cut(spec, ":")
	if !found {
		hi = lo
	}
	first, err1 := strconv.Atoi(strings.TrimSpace(lo))
	last, err2 := strconv.Atoi(strings.TrimSpace(hi))
	if err1 != nil || err2 != nil || first < 1 || last < first {
		return 0, 0, usageErrorf("invalid --lines value %q: want start:end with 1 <= start <= end", spec)
	}
	return first, last, nil
}

// lineStarts returns the offset of every line start, including the end of
// src when it finishes with a terminator.
func lineStarts(src []byte) []int {
	if len(src) == 0 {
		return nil
	}
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\n':
			starts = append(starts, i+1)
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			starts = append(starts, i+1)
		}
	}
	return starts
}
