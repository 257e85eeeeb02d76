package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidInput, "bad length: %d", 3)

	if err.Code != ErrCodeInvalidInput {
		t.Errorf("Code = %s, want %s", err.Code, ErrCodeInvalidInput)
	}
	if err.Message != "bad length: 3" {
		t.Errorf("Message = %q", err.Message)
	}
	if !strings.Contains(err.Error(), "INVALID_INPUT") {
		t.Errorf("Error() should contain code, got %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("underlying failure")
	err := Wrap(ErrCodeRenderFailed, cause, "render heatmap")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should match cause via errors.Is")
	}
	if !strings.Contains(err.Error(), "underlying failure") {
		t.Errorf("Error() should contain cause, got %q", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidMatrix, "ragged")

	if !Is(err, ErrCodeInvalidMatrix) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeRenderFailed) {
		t.Error("Is should not match a different code")
	}
	if Is(fmt.Errorf("plain"), ErrCodeInvalidMatrix) {
		t.Error("Is should not match non-structured errors")
	}
}

func TestIsWrappedChain(t *testing.T) {
	inner := New(ErrCodeInvalidPlotType, "unknown plot_type")
	outer := fmt.Errorf("create 3d plot: %w", inner)

	if !Is(outer, ErrCodeInvalidPlotType) {
		t.Error("Is should unwrap fmt-wrapped chains")
	}
	if GetCode(outer) != ErrCodeInvalidPlotType {
		t.Errorf("GetCode = %s, want %s", GetCode(outer), ErrCodeInvalidPlotType)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "x_data cannot be empty")
	if got := UserMessage(err); got != "x_data cannot be empty" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := fmt.Errorf("boom")
	if got := UserMessage(plain); got != "boom" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
