package ui

import (
	"encoding"
	"encoding/json"
	"fmt"
)

// Displayer is an interface for displaying a string.
type Displayer interface {
	Display() string
}

func Display(v any) string {
	switch v := v.(type) {
	case struct{}:
		return ""
	case Displayer:
		return v.Display()
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	case encoding.TextMarshaler:
		b, err := v.MarshalText()
		if err != nil {
			break
		}
		return string(b)
	default:
		data, err := json.Marshal(v)
		if err != nil {
			break
		}
		return string(data)
	}
	return fmt.Sprintf("[%T?]", v)
}
