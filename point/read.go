package point

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LineError records a skipped input line and why it was rejected.
type LineError struct {
	// Line is the 1-based line number in the input.
	Line int

	// Err is the Parse error, matching one of the package sentinels via errors.Is.
	Err error
}

// Error implements error.
func (e LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap exposes the underlying Parse error.
func (e LineError) Unwrap() error { return e.Err }

// Parse decodes a single "x,y,z" record. Surrounding whitespace on the
// record and on each field is ignored.
func Parse(line string) (Point, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Point{}, ErrEmptyLine
	}

	fields := strings.Split(line, ",")
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("%w: got %d in %q", ErrFieldCount, len(fields), line)
	}

	var coords [3]int
	for i, f := range fields {
		v, err := strconv.ParseUint(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return Point{}, fmt.Errorf("%w: %q", ErrBadCoordinate, f)
		}
		coords[i] = int(v)
	}

	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// Read parses every line of r and returns the points in input order.
// Lines that fail Parse are skipped; only I/O errors from r are returned.
func Read(r io.Reader) ([]Point, error) {
	pts, _, err := ReadWithReport(r)

	return pts, err
}

// ReadWithReport behaves like Read and additionally reports each skipped
// non-blank line. Blank lines are skipped without a report.
func ReadWithReport(r io.Reader) ([]Point, []LineError, error) {
	var (
		pts     []Point
		skipped []LineError
		lineNo  int
	)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		p, err := Parse(sc.Text())
		if err != nil {
			if !errors.Is(err, ErrEmptyLine) {
				skipped = append(skipped, LineError{Line: lineNo, Err: err})
			}
			continue
		}
		pts = append(pts, p)
	}
	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("point: read: %w", err)
	}

	return pts, skipped, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]Point, error) {
	pts, _, err := ReadFileWithReport(path)

	return pts, err
}

// ReadFileWithReport opens path and reads it with ReadWithReport.
func ReadFileWithReport(path string) ([]Point, []LineError, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("point: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadWithReport(f)
}
