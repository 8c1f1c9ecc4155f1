package config

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrKind
	}{
		{"not exist", fs.ErrNotExist, ErrKindNotFound},
		{"permission", fs.ErrPermission, ErrKindPermission},
		{"other", errors.New("disk on fire"), ErrKindIO},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := newError("load", "/tmp/x.conf", tt.err)
			if err.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", err.Kind, tt.want)
			}
			if !errors.Is(err, tt.err) {
				t.Error("error should unwrap to the cause")
			}
			if !strings.Contains(err.Error(), "/tmp/x.conf") {
				t.Errorf("Error() = %q should mention the path", err.Error())
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := newError("load", "a", fs.ErrNotExist)
	perm := newError("save", "b", fs.ErrPermission)

	if !IsNotFound(notFound) || IsNotFound(perm) {
		t.Error("IsNotFound() misclassified")
	}
	if !IsPermission(perm) || IsPermission(notFound) {
		t.Error("IsPermission() misclassified")
	}
	if IsNotFound(errors.New("plain")) {
		t.Error("plain errors are not config errors")
	}
}

func TestErrKindString(t *testing.T) {
	if ErrKindNotFound.String() != "Not Found" {
		t.Errorf("String() = %q", ErrKindNotFound.String())
	}
	if got := ErrKind(42).String(); got != "ErrKind(42)" {
		t.Errorf("String() = %q", got)
	}
}
