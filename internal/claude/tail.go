package claude

import (
	"bufio"
	"bytes"
	"io"
	"os"
)

// TailWindow is the suffix byte budget for last-record reads. A transcript's
// final record is found by reading at most this many bytes from the end of
// the file instead of scanning the whole file. A final line larger than the
// window cannot be recovered; the session is then skipped.
const TailWindow = 64 * 1024

// Scanner buffer sizes for first-line reads. Tool results can make single
// lines very large.
const (
	scanBufferSize  = 64 * 1024
	maxLineCapacity = 10 * 1024 * 1024
)

// firstLine returns the first non-empty line of f.
// Returns nil when the file has no content.
func firstLine(f *os.File) ([]byte, error) {
	scanner := bufio.NewScanner(f)
	buf := make([]byte, 0, scanBufferSize)
	scanner.Buffer(buf, maxLineCapacity)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		out := make([]byte, len(line))
		copy(out, line)
		return out, nil
	}
	return nil, scanner.Err()
}

// lastLineWithin returns the last complete non-empty line found in the final
// window bytes of f. When the window starts mid-file, everything before the
// first newline is a partial line and is discarded.
// Returns nil when no complete line fits in the window.
func lastLineWithin(f *os.File, window int64) ([]byte, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, err
	}

	start := int64(0)
	if info.Size() > window {
		start = info.Size() - window
	}

	if _, err := f.Seek(start, io.SeekStart); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	if start > 0 {
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			return nil, nil
		}
		data = data[i+1:]
	}

	lines := bytes.Split(data, []byte("\n"))
	for i := len(lines) - 1; i >= 0; i-- {
		line := bytes.TrimSpace(lines[i])
		if len(line) > 0 {
			return line, nil
		}
	}
	return nil, nil
}
