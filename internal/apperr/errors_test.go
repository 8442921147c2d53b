package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBadRequest_Wrapped(t *testing.T) {
	base := BadRequest("bad input")
	wrapped := fmt.Errorf("save: %w", base)

	if !IsBadRequest(wrapped) {
		t.Fatalf("expected wrapped error to be a bad request")
	}
	if !errors.Is(wrapped, base) {
		t.Fatalf("expected errors.Is to match the original value")
	}
	if wrapped.Error() != "save: bad input" {
		t.Fatalf("unexpected message %q", wrapped.Error())
	}
}

func TestIsBadRequest_OtherError(t *testing.T) {
	if IsBadRequest(errors.New("boom")) {
		t.Fatalf("plain error must not be a bad request")
	}
	if IsBadRequest(nil) {
		t.Fatalf("nil must not be a bad request")
	}
}
