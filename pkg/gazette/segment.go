package gazette

import "strings"

// Segment is one contiguous text block belonging to a single instrument.
type Segment struct {
	Type DocumentType
	Text string
}

// SegmentText splits flattened page text into instrument blocks. It is a
// convenience wrapper over SegmentLines.
func SegmentText(text string) []Segment {
	return SegmentLines(strings.Split(text, "\n"))
}

// SegmentLines walks the lines of an issue in page order and emits one
// segment per instrument. A line that matches a type-detection pattern
// closes the open block (if any) and opens a new one; lines before the
// first detected block belong to front matter and are discarded. Page
// headers and footers are not stripped: they travel inside whichever block
// they fall into.
func SegmentLines(lines []string) []Segment {
	var (
		segments    []Segment
		currentType DocumentType
		buffer      []string
	)

	for _, line := range lines {
		if docType, ok := DetectType(line); ok {
			if currentType != "" && len(buffer) > 0 {
				segments = append(segments, Segment{
					Type: currentType,
					Text: strings.Join(buffer, "\n"),
				})
			}
			currentType = docType
			buffer = []string{line}
			continue
		}
		if currentType != "" {
			buffer = append(buffer, line)
		}
	}

	if currentType != "" && len(buffer) > 0 {
		segments = append(segments, Segment{
			Type: currentType,
			Text: strings.Join(buffer, "\n"),
		})
	}

	return segments
}
