package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DjordjeVuckovic/ttgen/internal/apperr"
)

func TestNew(t *testing.T) {
	err := apperr.New(apperr.UnbalancedParentheses, "mismatched parentheses")

	if err.Error() != "mismatched parentheses" {
		t.Errorf("expected 'mismatched parentheses', got %q", err.Error())
	}
	if err.Unwrap() != nil {
		t.Errorf("expected nil unwrap, got %v", err.Unwrap())
	}
}

func TestWrap(t *testing.T) {
	inner := fmt.Errorf("read failed")
	err := apperr.Wrap(apperr.Validation, "invalid suite", inner)

	if err.Error() != "invalid suite: read failed" {
		t.Errorf("expected 'invalid suite: read failed', got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to return inner error")
	}
}

func TestKindOf_SurvivesFmtWrapping(t *testing.T) {
	original := apperr.Newf(apperr.UnexpectedCharacter, "unexpected character '%c'", '#')

	wrapped := fmt.Errorf("line 3: %w", original)
	doubleWrapped := fmt.Errorf("session: %w", wrapped)

	if got := apperr.KindOf(doubleWrapped); got != apperr.UnexpectedCharacter {
		t.Fatalf("expected unexpected_character, got %s", got)
	}
	if !apperr.Is(doubleWrapped, apperr.UnexpectedCharacter) {
		t.Error("Is should find the kind through double wrapping")
	}
}

func TestKindOf_PlainErrors(t *testing.T) {
	plain := fmt.Errorf("stdin closed")

	if got := apperr.KindOf(plain); got != apperr.Unknown {
		t.Fatalf("expected unknown, got %s", got)
	}
	if apperr.Is(nil, apperr.Unknown) {
		t.Error("nil error must not match any kind")
	}
}

func TestKind_IsFault(t *testing.T) {
	faults := []apperr.Kind{apperr.ValueStackOverflow, apperr.ValueStackUnderflow, apperr.UnbalancedProgram}
	for _, k := range faults {
		if !k.IsFault() {
			t.Errorf("%s should be a fault", k)
		}
	}
	if apperr.OperatorStackOverflow.IsFault() {
		t.Error("operator stack overflow is a parse error, not a fault")
	}
}
