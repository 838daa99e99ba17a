package wire

import (
	"bytes"
	"fmt"
	"io"
)

// InputFile is a file uploaded with a call. Its wire form is the InputFile
// itself; the transport writes it as a multipart file part named Name.
type InputFile struct {
	Name   string
	Reader io.Reader
}

// FileFromBytes returns an upload of data named name.
func FileFromBytes(name string, data []byte) *InputFile {
	return &InputFile{Name: name, Reader: bytes.NewReader(data)}
}

func (f *InputFile) String() string {
	return "InputFile(" + f.Name + ")"
}

// MarshalJSON fails: a file is sent as its own multipart part, never inside
// a serialized value.
func (f *InputFile) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("file %q can only be sent as a top-level argument", f.Name)
}

// File is the codec of uploads. Decoding always fails: no response carries
// file contents, so a file candidate never wins a read.
var File = Codec[*InputFile]{
	typ: Builtin(NameFile),
	enc: func(v *InputFile) (any, error) {
		if v == nil || v.Reader == nil {
			return nil, &SchemaMismatch{Type: Builtin(NameFile), Actual: "nil"}
		}

		return v, nil
	},
	dec: func(raw any, _ Sink) (*InputFile, error) {
		return nil, &CoercionError{Type: Builtin(NameFile), Actual: Shape(raw)}
	},
}
