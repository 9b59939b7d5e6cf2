package rfcdoc

import (
	"bufio"
	"errors"
	"io"
	"iter"
	"strconv"
	"strings"
)

// Record is one entry of the RFC index: a document number paired with the
// verbatim text block describing it.
type Record struct {
	ID int `json:"id"`

	// Description is the start line plus any continuation lines, including
	// their line terminators.
	Description string `json:"description"`
}

// String returns the record description.
func (r *Record) String() string {
	return r.Description
}

// Contains reports whether keyword occurs anywhere in the description,
// ignoring case.
func (r *Record) Contains(keyword string) bool {
	return strings.Contains(strings.ToLower(r.Description), strings.ToLower(keyword))
}

// NewRecord builds a record from its text block. The id is the integer formed
// by the leading run of digits of the block. Returns EMALFORMED if there is
// no such run or it does not fit in an int.
func NewRecord(description string) (*Record, error) {
	n := leadingDigits(description)
	if n == 0 {
		return nil, Errorf(EMALFORMED, "record has no leading number: %q", firstLine(description))
	}
	id, err := strconv.Atoi(description[:n])
	if err != nil {
		return nil, Errorf(EMALFORMED, "record number out of range: %q", description[:n])
	}
	return &Record{ID: id, Description: description}, nil
}

// ParseIndex returns a lazy sequence of the records found in an index
// stream. The sequence consumes r and cannot be restarted.
//
// A record opens on a line starting with a digit and closes on an empty
// line, on the next start line, or at end of stream. Text outside a record
// is dropped. A record whose number cannot be parsed yields an EMALFORMED
// error and parsing continues; a read error is yielded once and ends the
// sequence.
func ParseIndex(r io.Reader) iter.Seq2[*Record, error] {
	return func(yield func(*Record, error) bool) {
		br := bufio.NewReader(r)
		var open strings.Builder
		inRecord := false

		emit := func() bool {
			rec, err := NewRecord(open.String())
			open.Reset()
			inRecord = false
			return yield(rec, err)
		}

		for {
			line, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				yield(nil, WrapError(EIO, err, "read index"))
				return
			}

			if line != "" {
				switch {
				case isStartLine(line):
					if inRecord && !emit() {
						return
					}
					open.WriteString(line)
					inRecord = true
				case isSeparatorLine(line):
					if inRecord && !emit() {
						return
					}
				case inRecord:
					open.WriteString(line)
				}
			}

			if err != nil {
				break
			}
		}

		if inRecord {
			emit()
		}
	}
}

func isStartLine(line string) bool {
	return leadingDigits(line) > 0
}

func isSeparatorLine(line string) bool {
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r") == ""
}

func leadingDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}
	return n
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
