package pptx

import (
	"io"

	"golang.org/x/net/html/charset"
)

// defaultCharsetReader is the Options.CharsetReader used when a
// caller does not supply one. Legacy presentations occasionally
// declare a non-UTF-8 encoding in their XML prolog (most often from
// older non-Latin-locale authoring tools); golang.org/x/net/html/charset
// covers the IANA charset registry encoding/xml itself does not.
func defaultCharsetReader(cs string, input io.Reader) (io.Reader, error) {
	return charset.NewReaderLabel(cs, input)
}
