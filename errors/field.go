package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field attributes err to a field of the validated value. Use the Go
// name of the field, with dots for nested fields, for example
// "Metadata.Schema". A nil err gives nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if isNilErr(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{field: name, desc: description, parent: err}
}

// AppendField appends the error of a field to errs.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type fieldError struct {
	field  string
	desc   string
	parent error
}

func (e *fieldError) Error() string {
	if e.desc == "" {
		return fmt.Sprintf("field %q: %s", e.field, e.parent)
	}
	return fmt.Sprintf("field %q: %s: %s", e.field, e.desc, e.parent)
}

func (e *fieldError) Cause() error {
	return e.parent
}

// FieldErrors returns the errors of the named field found in err.
func FieldErrors(err error, name string) []error {
	var found []error
	walk(err, func(cur error) bool {
		if f, ok := cur.(*fieldError); ok && f.field == name {
			found = append(found, cur)
		}
		return false
	})
	return found
}

// Append joins the non nil errors. A single error is returned as is. The
// code of the result is the code of the first error.
func Append(errs ...error) error {
	var all multiErr
	for _, err := range errs {
		switch e := err.(type) {
		case multiErr:
			all = append(all, e...)
		default:
			if !isNilErr(err) {
				all = append(all, err)
			}
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred: %s", len(m), strings.Join(msgs, "; "))
}

func (m multiErr) ABCICode() uint32 {
	return abciCode(m[0])
}

func (m multiErr) Unpack() []error {
	return m
}
