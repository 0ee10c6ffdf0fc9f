package confy

import (
	"errors"
	"io"
	"unicode/utf8"

	"github.com/lc/confy/internal/codec"
)

// errNotUTF8 mirrors the failure of reading a configuration file as text.
var errNotUTF8 = errors.New("stream did not contain valid UTF-8")

// read opens, reads and decodes path. Every open failure, not-found
// included, is ErrGeneralLoad with the I/O cause attached.
func (p *Provider[T]) read(path string) (v T, err error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return v, newError(ErrGeneralLoad, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			var zero T
			v, err = zero, newError(ErrReadConfigurationFile, cerr)
		}
	}()

	data, err := io.ReadAll(f)
	if err != nil {
		return v, newError(ErrReadConfigurationFile, err)
	}
	if !utf8.Valid(data) {
		return v, newError(ErrReadConfigurationFile, errNotUTF8)
	}

	v = defaultValue[T]()
	if err := codec.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, newError(ErrBadData, err)
	}
	return v, nil
}
