package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/paso-board/internal/drag"
	"github.com/thenoetrevino/paso-board/internal/models"
)

// ParseValueArg parses a CLI value. With an empty kind the kind is inferred.
func ParseValueArg(kind, text string) (models.Value, error) {
	if kind == "" {
		return models.InferValue(text), nil
	}
	k := models.ParseKind(strings.ToLower(kind))
	if k == models.KindAbsent {
		return models.Value{}, fmt.Errorf("%w: unknown kind %q", models.ErrInvalidValue, kind)
	}
	v, err := models.ParseValue(k, text)
	if err != nil {
		return models.Value{}, fmt.Errorf("%w: %q is not a %s", err, text, k)
	}
	return v, nil
}

// ParseFieldArgs parses repeated name=value assignments, keeping their order.
// A name may carry a kind as name:kind=value.
func ParseFieldArgs(args []string) ([]models.Field, error) {
	fields := make([]models.Field, 0, len(args))
	seen := make(map[string]bool, len(args))
	for _, arg := range args {
		lhs, text, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("%w: field %q must be name=value", ErrMalformedInput, arg)
		}
		name, kind, _ := strings.Cut(strings.TrimSpace(lhs), ":")
		if name == "" {
			return nil, fmt.Errorf("%w: field %q has no name", ErrMalformedInput, arg)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: field %q given twice", ErrMalformedInput, name)
		}
		seen[name] = true

		v, err := ParseValueArg(kind, text)
		if err != nil {
			return nil, err
		}
		fields = append(fields, models.Field{Name: name, Value: v})
	}
	return fields, nil
}

// ParsePoint parses "x,y"
func ParsePoint(s string) (drag.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return drag.Point{}, fmt.Errorf("%w: point %q must be x,y", ErrMalformedInput, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return drag.Point{}, fmt.Errorf("%w: point %q", ErrMalformedInput, s)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return drag.Point{}, fmt.Errorf("%w: point %q", ErrMalformedInput, s)
	}
	return drag.Point{X: x, Y: y}, nil
}
