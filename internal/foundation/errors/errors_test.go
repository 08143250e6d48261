package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestClassifiedError(t *testing.T) {
	t.Run("Basic error creation", func(t *testing.T) {
		err := ConfigError(CodeMalformedEntry, "sidebar entry has neither a route nor children").
			WithContext("location", "sidebar[2]").
			Build()

		if err.Category() != CategoryConfig {
			t.Errorf("expected category %s, got %s", CategoryConfig, err.Category())
		}
		if err.Severity() != SeverityFatal {
			t.Errorf("expected severity %s, got %s", SeverityFatal, err.Severity())
		}
		if err.Code() != CodeMalformedEntry {
			t.Errorf("expected code %s, got %s", CodeMalformedEntry, err.Code())
		}
		loc, ok := err.Context().GetString("location")
		if !ok || loc != "sidebar[2]" {
			t.Errorf("expected context location=sidebar[2], got %v", loc)
		}
		want := "[config:fatal:malformed_entry] sidebar entry has neither a route nor children"
		if err.Error() != want {
			t.Errorf("unexpected message %q", err.Error())
		}
	})

	t.Run("Config errors are fatal and need user action", func(t *testing.T) {
		err := ConfigError(CodeDuplicateRoute, "duplicate").Build()
		if !err.IsFatal() {
			t.Error("expected config error to be fatal")
		}
		if err.CanRetry() {
			t.Error("expected config error to not be retryable")
		}
	})

	t.Run("WithContext does not mutate the receiver", func(t *testing.T) {
		base := ConfigError(CodeInvalidLocale, "bad prefix").Build()
		derived := base.WithContext("prefix", "zh")
		if _, ok := base.Context().Get("prefix"); ok {
			t.Error("expected base context to be untouched")
		}
		if v, _ := derived.Context().GetString("prefix"); v != "zh" {
			t.Errorf("expected derived context prefix=zh, got %q", v)
		}
	})
}

func TestErrorChains(t *testing.T) {
	inner := ConfigError(CodeMalformedEntry, "malformed").Build()
	wrapped := fmt.Errorf("build sidebar for zh: %w", inner)

	if !IsClassified(wrapped) {
		t.Fatal("expected wrapped error to be classified")
	}
	if !HasCode(wrapped, CodeMalformedEntry) {
		t.Error("expected code to be found through fmt wrapping")
	}
	if HasCode(wrapped, CodeDuplicateRoute) {
		t.Error("unexpected code match")
	}
	if !errors.Is(wrapped, ConfigError(CodeMalformedEntry, "other text").Build()) {
		t.Error("expected errors.Is to match on category and code")
	}
	if GetCategory(errors.New("plain")) != CategoryInternal {
		t.Error("expected plain errors to map to internal")
	}

	joined := ValidationError("site has errors").
		WithCause(errors.Join(
			ConfigError(CodeDuplicateRoute, "dup").Build(),
			ConfigError(CodeDanglingLink, "dangling").Build(),
		)).Build()
	if !HasCode(joined, CodeDanglingLink) {
		t.Error("expected code to be found inside joined causes")
	}
	if GetCode(joined) != CodeNone {
		t.Errorf("expected outer code to be empty, got %q", GetCode(joined))
	}
}

func TestErrorContext(t *testing.T) {
	ctx1 := ErrorContext{}.Set("key1", "value1").Set("shared", "original")
	ctx2 := ErrorContext{}.Set("key2", 42).Set("shared", "overridden")

	merged := ctx1.Merge(ctx2)

	if v, _ := merged.GetString("key1"); v != "value1" {
		t.Errorf("expected key1=value1, got %s", v)
	}
	if v, _ := merged.Get("key2"); v != 42 {
		t.Errorf("expected key2=42, got %v", v)
	}
	if v, _ := merged.GetString("shared"); v != "overridden" {
		t.Errorf("expected shared=overridden, got %s", v)
	}
	if _, ok := merged.GetString("key2"); ok {
		t.Error("expected non-string value to not be returned as string")
	}
}
