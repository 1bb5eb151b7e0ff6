package errors

import (
	"fmt"
	"strings"
	"testing"
)

func TestTrace(t *testing.T) {
	if Trace(nil) != nil {
		t.Errorf("expected nil for a nil error")
	}

	raw := fmt.Errorf("boom")
	err := Trace(raw)
	if err == nil {
		t.Fatal("expected a traced error")
	}
	if Cause(err) != raw {
		t.Errorf("expected cause to be the raw error")
	}
	if err.Error() != "boom" {
		t.Errorf("expected message to surface, got %s", err.Error())
	}

	// Re-tracing preserves the cause.
	err = Trace(Trace(err))
	if Cause(err) != raw {
		t.Errorf("expected cause through stacked traces")
	}
}

func TestErrorStack(t *testing.T) {
	err := Trace(Newf("boom"))

	stack := ErrorStack(err)
	if len(stack) != 3 {
		t.Fatalf("expected 3 stack lines, got %d: %+v", len(stack), stack)
	}
	if stack[0] != "boom" {
		t.Errorf("expected the raw error first, got %s", stack[0])
	}
	for _, line := range stack[1:] {
		if !strings.Contains(line, "[trace]") {
			t.Errorf("expected a trace line, got %s", line)
		}
	}

	if Details(err) != strings.Join(stack, "\n") {
		t.Errorf("expected Details to join the stack")
	}
}

func TestUserError(t *testing.T) {
	raw := fmt.Errorf("boom")
	err := NewUserErrorf(raw,
		404, "asset_not_found",
		"The artwork you are trying to retrieve does not exist: %d.", 7)

	if err.Status() != 404 {
		t.Errorf("expected status 404, got %d", err.Status())
	}
	if err.Code() != "asset_not_found" {
		t.Errorf("expected code asset_not_found, got %s", err.Code())
	}
	if !strings.Contains(err.Message(), "7") {
		t.Errorf("expected formatted message, got %s", err.Message())
	}
	if err.Cause() != raw {
		t.Errorf("expected cause to be the raw error")
	}
}

func TestExtractUserError(t *testing.T) {
	if ExtractUserError(nil) != nil {
		t.Errorf("expected nil for a nil error")
	}
	if ExtractUserError(fmt.Errorf("boom")) != nil {
		t.Errorf("expected nil for a raw error")
	}
	if ExtractUserError(Trace(fmt.Errorf("boom"))) != nil {
		t.Errorf("expected nil for a traced raw error")
	}

	user := NewUserError(nil, 400, "not_admin", "Minting is restricted.")
	err := Trace(Trace(user))

	extracted := ExtractUserError(err)
	if extracted == nil {
		t.Fatal("expected a user error through traces")
	}
	if extracted.Code() != "not_admin" {
		t.Errorf("expected code not_admin, got %s", extracted.Code())
	}

	built := Build(extracted)
	if built.ErrCode != "not_admin" {
		t.Errorf("expected built code not_admin, got %s", built.ErrCode)
	}
	if built.ErrMessage != "Minting is restricted." {
		t.Errorf("expected built message, got %s", built.ErrMessage)
	}
}
