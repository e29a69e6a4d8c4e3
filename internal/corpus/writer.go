package corpus

import (
	"io"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// Writer appends cleaned tweets to a size-capped rotating corpus file, one
// line per document.
type Writer struct {
	out *lumberjack.Logger
}

// NewWriter opens a rotating writer at path, rotating above maxSize
// megabytes.
func NewWriter(path string, maxSize int) *Writer {
	return &Writer{
		out: &lumberjack.Logger{
			Filename: path,
			MaxSize:  maxSize,
		},
	}
}

// WriteDocument appends the cleaned text of one document.
func (w *Writer) WriteDocument(d Document) error {
	_, err := io.WriteString(w.out, d.Clean+"\n")
	return err
}

// Close flushes and closes the underlying file.
func (w *Writer) Close() error {
	return w.out.Close()
}
