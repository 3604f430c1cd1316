package csv

import "strings"

// Detector implements format.Detector for CSV. Per §4.1, CSV is chosen
// when the first line contains the delimiter and subsequent lines carry
// the same delimiter count, requiring at least two lines so a single
// comma-bearing sentence doesn't misfire as tabular data.
type Detector struct {
	Delimiter byte
}

// Detect returns a confidence score in [0, 100].
func (d *Detector) Detect(peek []byte) int {
	lines := strings.Split(string(peek), "\n")
	if len(lines) < 2 {
		return 0
	}

	first := lines[0]
	count := strings.Count(first, string(d.Delimiter))
	if count == 0 {
		return 0
	}

	consistent := 0
	checked := 0
	for _, line := range lines[1:] {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		checked++
		if strings.Count(line, string(d.Delimiter)) == count {
			consistent++
		}
		if checked >= 10 {
			break
		}
	}
	if checked == 0 || consistent != checked {
		return 0
	}
	return 90
}
