package confy

import (
	"errors"
	"strconv"

	"github.com/lc/confy/internal/codec"
)

// Kind classifies the failures confy can report. A Kind is itself an
// error so it can be used as a target for errors.Is:
//
//	if errors.Is(err, confy.ErrGeneralLoad) { ... }
type Kind int

const (
	// ErrBadData means the file could not be decoded by the compiled-in codec.
	ErrBadData Kind = iota + 1
	// ErrDirectoryCreationFailed means the parent directory could not be created.
	ErrDirectoryCreationFailed
	// ErrGeneralLoad means the file could not be opened for reading.
	ErrGeneralLoad
	// ErrBadConfigDirectory means no usable configuration directory could be derived.
	ErrBadConfigDirectory
	// ErrSerialize means the value could not be encoded by the compiled-in codec.
	ErrSerialize
	// ErrWriteConfigurationFile means writing, syncing or renaming the staged file failed.
	ErrWriteConfigurationFile
	// ErrReadConfigurationFile means the opened file could not be read.
	ErrReadConfigurationFile
	// ErrOpenConfigurationFile means the staging file could not be created.
	ErrOpenConfigurationFile
)

func (k Kind) String() string {
	switch k {
	case ErrBadData:
		return "Bad " + codec.Name + " data"
	case ErrDirectoryCreationFailed:
		return "Failed to create directory"
	case ErrGeneralLoad:
		return "Failed to load configuration file"
	case ErrBadConfigDirectory:
		return "Bad configuration directory"
	case ErrSerialize:
		return "Failed to serialize configuration data into " + codec.Name
	case ErrWriteConfigurationFile:
		return "Failed to write configuration file"
	case ErrReadConfigurationFile:
		return "Failed to read configuration file"
	case ErrOpenConfigurationFile:
		return "Failed to open configuration file"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

func (k Kind) Error() string { return k.String() }

// Error is the error type returned by every confy operation. It carries
// either a Reason (for ErrBadConfigDirectory) or the underlying cause.
type Error struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *Error) Error() string {
	switch {
	case e.Reason != "":
		return e.Kind.String() + ": " + e.Reason
	case e.Err != nil:
		return e.Kind.String() + ": " + e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is the Kind of e.
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func newError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

func badConfigDirectory(reason string) *Error {
	return &Error{Kind: ErrBadConfigDirectory, Reason: reason}
}
