package brailleart

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"
)

// Art is rendered braille text, one element per line without line feeds.
type Art []string

// String joins the lines, terminating each one with a line feed.
func (a Art) String() string {
	var sb strings.Builder
	for _, line := range a {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// WriteTo writes the art as UTF-8 text to w.
func (a Art) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, a.String())
	return int64(n), err
}

// Sink delivers finished art. With a blank Name the art is displayed on W,
// otherwise it is saved to Name.txt.
type Sink struct {
	W    io.Writer
	Name string
}

// Path returns the file the art is saved to, or "" when it is displayed.
func (s Sink) Path() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return ""
	}
	return name + ".txt"
}

// Put displays or saves a. Failures wrap ErrIO.
func (s Sink) Put(a Art) error {
	if path := s.Path(); path != "" {
		if err := ioutil.WriteFile(path, []byte(a.String()), 0644); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		return nil
	}
	if s.W == nil {
		return fmt.Errorf("%w: no display writer", ErrIO)
	}
	if _, err := a.WriteTo(s.W); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}
	return nil
}
