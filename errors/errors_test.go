package errors

import (
	stdlib "errors"
	"fmt"
	"io"
	"testing"

	"github.com/pkg/errors"
)

func TestCause(t *testing.T) {
	std := stdlib.New("this is a stdlib error")

	cases := map[string]struct {
		err  error
		root error
	}{
		"Errors are self-causing": {
			err:  ErrNotFound,
			root: ErrNotFound,
		},
		"Wrap reveals root cause": {
			err:  Wrap(ErrNotFound, "foo"),
			root: ErrNotFound,
		},
		"Cause works for stderr as root": {
			err:  Wrap(std, "Some helpful text"),
			root: std,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := errors.Cause(tc.err); got != tc.root {
				t.Fatal("unexpected result")
			}
		})
	}
}

func TestErrorIs(t *testing.T) {
	cases := map[string]struct {
		a      *Error
		b      error
		wantIs bool
	}{
		"instance of the same error": {
			a:      ErrNotFound,
			b:      ErrNotFound,
			wantIs: true,
		},
		"two different coded errors": {
			a:      ErrNotFound,
			b:      ErrModel,
			wantIs: false,
		},
		"successful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      errors.Wrap(ErrNotFound, "gone"),
			wantIs: true,
		},
		"unsuccessful comparison to a wrapped error": {
			a:      ErrNotFound,
			b:      Wrap(ErrUnauthorized, "gone"),
			wantIs: false,
		},
		"nil is nil": {
			a:      nil,
			b:      nil,
			wantIs: true,
		},
		"nil is any error nil": {
			a:      nil,
			b:      (*wrappedError)(nil),
			wantIs: true,
		},
		"nil is not not-nil": {
			a:      nil,
			b:      ErrUnauthorized,
			wantIs: false,
		},
		"field error is unwrapped": {
			a:      ErrAmount,
			b:      Field("Amount", ErrAmount, "must be positive"),
			wantIs: true,
		},
		"any of clubbed errors matches": {
			a:      ErrAmount,
			b:      Append(ErrEmpty, Wrap(ErrAmount, "negative")),
			wantIs: true,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			if got := tc.a.Is(tc.b); got != tc.wantIs {
				t.Fatalf("unexpected result - got: %v", got)
			}
		})
	}
}

func TestRegisterTwicePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic")
		}
	}()
	Register(ErrNotFound.code, "duplicated")
}

func TestWrapAttachesStackTraceOnce(t *testing.T) {
	err := Wrap(Wrap(ErrNotFound, "inner"), "outer")
	if stackTrace(err) == nil {
		t.Fatal("stack trace not attached")
	}
	if got, want := err.Error(), "outer: inner: not found"; got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
	if Wrap(nil, "nothing") != nil {
		t.Fatal("wrapping nil must return nil")
	}
}

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err)
		panic("boom")
	}
	err := fn()
	if !ErrPanic.Is(err) {
		t.Fatalf("want panic error, got %v", err)
	}
}

func TestABCIInfo(t *testing.T) {
	cases := map[string]struct {
		err      error
		debug    bool
		wantCode uint32
		wantLog  string
	}{
		"plain registered error": {
			err:      ErrNotFound,
			wantLog:  "not found",
			wantCode: ErrNotFound.code,
		},
		"wrapped registered error": {
			err:      Wrap(Wrap(ErrNotFound, "foo"), "bar"),
			wantLog:  "bar: foo: not found",
			wantCode: ErrNotFound.code,
		},
		"nil is empty message": {
			err:      nil,
			wantLog:  "",
			wantCode: 0,
		},
		"nil registered error is not an error": {
			err:      (*Error)(nil),
			wantLog:  "",
			wantCode: 0,
		},
		"stdlib is generic message": {
			err:      io.EOF,
			wantLog:  "internal error",
			wantCode: 1,
		},
		"stdlib returns error message in debug mode": {
			err:      io.EOF,
			debug:    true,
			wantLog:  "EOF",
			wantCode: 1,
		},
		"wrapped stdlib is only a generic message": {
			err:      Wrap(io.EOF, "cannot read file"),
			wantLog:  "internal error",
			wantCode: 1,
		},
		"field error keeps the code": {
			err:      Field("Owner", ErrEmpty, "required"),
			wantLog:  `field "Owner": required: value is empty`,
			wantCode: ErrEmpty.code,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			code, log := ABCIInfo(tc.err, tc.debug)
			if code != tc.wantCode {
				t.Errorf("want %d code, got %d", tc.wantCode, code)
			}
			if log != tc.wantLog {
				t.Errorf("want %q log, got %q", tc.wantLog, log)
			}
		})
	}
}

func TestRedact(t *testing.T) {
	if err := Redact(ErrPanic, false); ErrPanic.Is(err) {
		t.Error("panic error must be redacted")
	}
	if err := Redact(ErrUnauthorized, false); !ErrUnauthorized.Is(err) {
		t.Error("registered error must not be redacted")
	}
	if err := Redact(io.EOF, true); err != io.EOF {
		t.Error("debug mode must not redact")
	}
	if got := fmt.Sprint(Redact(io.EOF, false)); got != internalABCILog {
		t.Errorf("unexpected redacted message %q", got)
	}
}

func TestFieldErrors(t *testing.T) {
	err := Append(
		Field("Owner", ErrEmpty, "required"),
		Field("AssetValue", ErrAmount, "must be positive"),
		nil,
	)
	if got := FieldErrors(err, "Owner"); len(got) != 1 {
		t.Fatalf("want one Owner error, got %v", got)
	}
	if got := FieldErrors(err, "Metadata"); len(got) != 0 {
		t.Fatalf("want no Metadata error, got %v", got)
	}
	if code, _ := ABCIInfo(err, false); code != ErrEmpty.code {
		t.Fatalf("first error must define the code, got %d", code)
	}
	if Append(nil, nil) != nil {
		t.Fatal("append of nils must be nil")
	}
}
