package source

import (
	"fmt"
)

// Span — байтовый диапазон внутри одного файла. Start включительно, End нет.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover расширяет span так, чтобы он покрывал other (в пределах одного файла).
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Text returns the exact source substring the span covers.
// Out-of-range spans yield "" rather than a panic: callers treat a missing
// substring as "source not available".
func (f *File) Text(s Span) string {
	if f == nil || s.File != f.ID {
		return ""
	}
	if s.Start > s.End || int(s.End) > len(f.Content) {
		return ""
	}
	return string(f.Content[s.Start:s.End])
}
