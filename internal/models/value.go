package models

import (
	"strconv"
	"strings"
	"time"
)

// Kind identifies which variant a Value holds
type Kind int

const (
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBoolean
	KindDate
	KindList
	KindLink
	KindTag
)

var kindNames = map[Kind]string{
	KindAbsent:  "absent",
	KindString:  "string",
	KindNumber:  "number",
	KindBoolean: "boolean",
	KindDate:    "date",
	KindList:    "list",
	KindLink:    "link",
	KindTag:     "tag",
}

// String returns the lowercase kind name used in storage and CLI output
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "absent"
}

// ParseKind maps a kind name back to its Kind. Unknown names are absent.
func ParseKind(s string) Kind {
	for k, name := range kindNames {
		if name == s {
			return k
		}
	}
	return KindAbsent
}

// Value is a typed record field value.
// The zero Value is Absent.
type Value struct {
	kind Kind
	str  string // String, Link target, Tag name
	num  float64
	b    bool
	t    time.Time
	list []Value
}

// Absent returns the no-value Value
func Absent() Value { return Value{} }

// String creates a string Value
func String(s string) Value { return Value{kind: KindString, str: s} }

// Number creates a numeric Value
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }

// Boolean creates a boolean Value
func Boolean(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Date creates a date Value
func Date(t time.Time) Value { return Value{kind: KindDate, t: t} }

// List creates a list Value
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Link creates a link Value pointing at target
func Link(target string) Value { return Value{kind: KindLink, str: target} }

// Tag creates a tag Value. A leading '#' is stripped.
func Tag(name string) Value { return Value{kind: KindTag, str: strings.TrimPrefix(name, "#")} }

func (v Value) Kind() Kind         { return v.kind }
func (v Value) IsAbsent() bool     { return v.kind == KindAbsent }
func (v Value) IsNumber() bool     { return v.kind == KindNumber }
func (v Value) Num() float64       { return v.num }
func (v Value) Bool() bool         { return v.b }
func (v Value) Time() time.Time    { return v.t }
func (v Value) Text() string       { return v.str }
func (v Value) Items() []Value     { return v.list }
func (v Value) String() string     { return Canonical(v) }
func (v Value) Equal(o Value) bool { return v.kind == o.kind && Canonical(v) == Canonical(o) }

// Canonical returns the canonical string form of v.
// Every equality comparison between field values and group keys goes
// through this function.
func Canonical(v Value) string {
	switch v.kind {
	case KindString, KindLink:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindDate:
		u := v.t.UTC()
		if u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0 {
			return u.Format(time.DateOnly)
		}
		return v.t.Format(time.RFC3339)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = Canonical(item)
		}
		return strings.Join(parts, ", ")
	case KindTag:
		return "#" + v.str
	default:
		return ""
	}
}

// ParseValue builds a Value of the given kind from its canonical text.
// Lists are parsed as comma separated strings.
func ParseValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindAbsent:
		return Absent(), nil
	case KindString:
		return String(text), nil
	case KindNumber:
		n, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
		if err != nil {
			return Value{}, ErrInvalidValue
		}
		return Number(n), nil
	case KindBoolean:
		b, err := strconv.ParseBool(strings.TrimSpace(text))
		if err != nil {
			return Value{}, ErrInvalidValue
		}
		return Boolean(b), nil
	case KindDate:
		text = strings.TrimSpace(text)
		if t, err := time.Parse(time.DateOnly, text); err == nil {
			return Date(t), nil
		}
		t, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return Value{}, ErrInvalidValue
		}
		return Date(t), nil
	case KindList:
		var items []Value
		for _, part := range strings.Split(text, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, String(part))
			}
		}
		return List(items...), nil
	case KindLink:
		return Link(text), nil
	case KindTag:
		return Tag(text), nil
	default:
		return Value{}, ErrInvalidValue
	}
}

// InferValue guesses a kind for untyped text input (CLI arguments).
// Numbers, booleans, dates and #tags are recognised; everything else is a string.
func InferValue(text string) Value {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return String(text)
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return Number(n)
	}
	if trimmed == "true" || trimmed == "false" {
		return Boolean(trimmed == "true")
	}
	if t, err := time.Parse(time.DateOnly, trimmed); err == nil {
		return Date(t)
	}
	if strings.HasPrefix(trimmed, "[[") && strings.HasSuffix(trimmed, "]]") {
		return Link(strings.TrimSuffix(strings.TrimPrefix(trimmed, "[["), "]]"))
	}
	if strings.HasPrefix(trimmed, "#") && len(trimmed) > 1 && !strings.ContainsAny(trimmed, " \t") {
		return Tag(trimmed)
	}
	return String(text)
}
