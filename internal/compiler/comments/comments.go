// Package comments implements the source-level comment stripper used by
// the "print source with comments removed" mode: everything from a '%' to
// the end of its line is elided, the newline itself is kept.
package comments

import (
	"bufio"
	"io"
)

// Strip copies src to dst and w simultaneously, with every '%'-to-newline
// span removed from both destinations. w may be nil to skip the secondary
// copy (the reference implementation always wrote to both the console and
// an output file; callers that only need one pass nil for the other).
func Strip(src io.Reader, dst io.Writer, w io.Writer) error {
	r := bufio.NewReader(src)
	inComment := false

	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		if inComment {
			if b == '\n' {
				inComment = false
				if err := writeByte(dst, b); err != nil {
					return err
				}
				if err := writeByte(w, b); err != nil {
					return err
				}
			}
			continue
		}

		if b == '%' {
			inComment = true
			continue
		}

		if err := writeByte(dst, b); err != nil {
			return err
		}
		if err := writeByte(w, b); err != nil {
			return err
		}
	}
}

func writeByte(w io.Writer, b byte) error {
	if w == nil {
		return nil
	}
	_, err := w.Write([]byte{b})
	return err
}
