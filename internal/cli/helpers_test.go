package cli

import (
	"errors"
	"testing"

	"github.com/thenoetrevino/paso-board/internal/models"
	columnservice "github.com/thenoetrevino/paso-board/internal/services/column"
)

// ============================================================================
// Value Parsing Tests
// ============================================================================

func TestParseValueArg(t *testing.T) {
	tests := []struct {
		kind     string
		text     string
		wantKind models.Kind
		wantErr  bool
	}{
		{"", "3", models.KindNumber, false},
		{"", "Done", models.KindString, false},
		{"string", "3", models.KindString, false},
		{"NUMBER", "2.5", models.KindNumber, false},
		{"number", "three", 0, true},
		{"date", "2024-01-02", models.KindDate, false},
		{"tag", "urgent", models.KindTag, false},
		{"bogus", "x", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind+"/"+tt.text, func(t *testing.T) {
			v, err := ParseValueArg(tt.kind, tt.text)
			if tt.wantErr {
				if !errors.Is(err, models.ErrInvalidValue) {
					t.Errorf("Expected ErrInvalidValue, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Expected no error, got %v", err)
			}
			if v.Kind() != tt.wantKind {
				t.Errorf("Kind = %s, want %s", v.Kind(), tt.wantKind)
			}
		})
	}
}

func TestParseFieldArgs(t *testing.T) {
	fields, err := ParseFieldArgs([]string{"status=Todo", "order=2", "code:string=007"})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(fields) != 3 {
		t.Fatalf("Expected 3 fields, got %d", len(fields))
	}
	if fields[0].Name != "status" || fields[0].Value.Text() != "Todo" {
		t.Errorf("First field = %+v, want status=Todo", fields[0])
	}
	if !fields[1].Value.IsNumber() {
		t.Errorf("order should be a number, got %s", fields[1].Value.Kind())
	}
	if fields[2].Value.Kind() != models.KindString || fields[2].Value.Text() != "007" {
		t.Errorf("code should stay the string 007, got %s %q", fields[2].Value.Kind(), fields[2].Value.Text())
	}
}

func TestParseFieldArgs_Invalid(t *testing.T) {
	tests := []struct {
		args        []string
		description string
	}{
		{[]string{"status"}, "missing ="},
		{[]string{"=Todo"}, "missing name"},
		{[]string{"a=1", "a=2"}, "duplicate name"},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			_, err := ParseFieldArgs(tt.args)
			if !errors.Is(err, ErrMalformedInput) {
				t.Errorf("Expected ErrMalformedInput for %s, got %v", tt.description, err)
			}
		})
	}
}

func TestParsePoint(t *testing.T) {
	p, err := ParsePoint("12.5, 40")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if p.X != 12.5 || p.Y != 40 {
		t.Errorf("Point = %+v, want {12.5 40}", p)
	}

	for _, bad := range []string{"", "12", "x,1", "1,y"} {
		if _, err := ParsePoint(bad); !errors.Is(err, ErrMalformedInput) {
			t.Errorf("ParsePoint(%q) should fail with ErrMalformedInput, got %v", bad, err)
		}
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCodeFor(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitSuccess},
		{errors.New("disk full"), ExitError},
		{models.ErrRecordNotFound, ExitNotFound},
		{models.ErrUnknownColumn, ExitNotFound},
		{ErrMalformedInput, ExitDataErr},
		{models.ErrInvalidValue, ExitValidation},
		{columnservice.ErrNameHasComma, ExitValidation},
		{columnservice.ErrNameNotStorable, ExitValidation},
		{Exit(ExitUsage, errors.New("missing argument")), ExitUsage},
		{Exitf(ExitNotFound, "wrapped: %w", models.ErrInvalidValue), ExitNotFound},
	}

	for _, tt := range tests {
		if got := ExitCodeFor(tt.err); got != tt.want {
			t.Errorf("ExitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
		}
	}
}

func TestCodedError_WrapsCause(t *testing.T) {
	err := Exit(ExitValidation, models.ErrInvalidValue)

	var coded *CodedError
	if !errors.As(err, &coded) {
		t.Fatalf("Expected *CodedError, got %T", err)
	}
	if coded.Code != ExitValidation {
		t.Errorf("Code = %d, want %d", coded.Code, ExitValidation)
	}
	if !errors.Is(err, models.ErrInvalidValue) {
		t.Errorf("Expected the cause to be reachable through Unwrap")
	}
	if err.Error() != models.ErrInvalidValue.Error() {
		t.Errorf("Error() = %q, want the cause's message", err.Error())
	}
	// The general-failure constant and the coded type coexist
	if ExitCodeFor(errors.Join(errors.New("x"))) != ExitError {
		t.Errorf("Expected unclassified errors to map to ExitError")
	}
}
