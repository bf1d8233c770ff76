package ledgertypes

import (
	"fmt"
	"testing"
)

func TestRejectError(t *testing.T) {
	err := NewRejectError(7, "sequence number too old")
	if err.Code != 7 {
		t.Errorf("expected code 7, got %d", err.Code)
	}
	if err.Reason != "sequence number too old" {
		t.Errorf("unexpected reason: %s", err.Reason)
	}

	expected := "transaction rejected (code 7): sequence number too old"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsReject(t *testing.T) {
	rejectErr := NewRejectError(3, "bad chain id")

	// Direct.
	r, ok := IsReject(rejectErr)
	if !ok {
		t.Fatal("expected IsReject to return true")
	}
	if r.Code != 3 {
		t.Errorf("expected code 3, got %d", r.Code)
	}

	// Wrapped.
	wrapped := fmt.Errorf("submit: %w", rejectErr)
	r2, ok2 := IsReject(wrapped)
	if !ok2 {
		t.Fatal("expected IsReject to unwrap wrapped error")
	}
	if r2.Code != 3 {
		t.Errorf("expected code 3, got %d", r2.Code)
	}

	// Other errors.
	if _, ok := IsReject(fmt.Errorf("connection reset")); ok {
		t.Fatal("expected IsReject to return false for a plain error")
	}
	if _, ok := IsReject(nil); ok {
		t.Fatal("expected IsReject to return false for nil")
	}
}
