package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"loud", slog.LevelInfo},
	}
	for _, tc := range cases {
		if got := ParseLevel(tc.in); got != tc.want {
			t.Fatalf("ParseLevel(%q) expected %v, got %v", tc.in, tc.want, got)
		}
	}
}

func TestLogger_JSONComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Format: "json", Output: &buf, Component: ComponentApp})

	logger.WithComponent(ComponentFamily).Warn("Family composition rejected",
		NewFields().WithOperation(OpValidate).WithError(errors.New("boom")).ToSlice()...)

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid json %q: %v", buf.String(), err)
	}
	if rec[FieldComponent] != ComponentFamily {
		t.Errorf("component = %v, want %v", rec[FieldComponent], ComponentFamily)
	}
	if rec[FieldOperation] != OpValidate || rec[FieldError] != "boom" {
		t.Errorf("unexpected record %v", rec)
	}
	if logger.Component() != ComponentApp {
		t.Errorf("parent component changed to %q", logger.Component())
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelWarn, Output: &buf, Component: ComponentMoney})

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown", FieldAmount, 15.0)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("records below warn were written: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "component=money") {
		t.Errorf("expected text record with component, got %q", out)
	}
}

func TestLogFields(t *testing.T) {
	fields := NewFields().
		WithMoney(15, "USD").
		WithJob("Developer", 34.5).
		WithError(nil).
		With(FieldFamilySize, 3)

	if _, ok := fields[FieldError]; ok {
		t.Errorf("nil error should not add a field")
	}
	if len(fields.ToSlice()) != 2*len(fields) {
		t.Errorf("ToSlice length = %d, want %d", len(fields.ToSlice()), 2*len(fields))
	}
	if fields[FieldCurrency] != "USD" || fields[FieldJobTitle] != "Developer" || fields[FieldFamilySize] != 3 {
		t.Errorf("unexpected fields %v", fields)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("dropped", FieldOperation, OpStartup)
}
