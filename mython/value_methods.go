package mython

import (
	"bytes"
	"fmt"
	"io"
)

// IsTrue reports whether h is truthy: a Bool holding True, a nonzero
// Number, or a nonempty String is true; everything else, including
// None, is false. It is total over every holder and never fails.
func IsTrue(h Holder) bool {
	if h.IsEmpty() {
		return false
	}
	switch h.Value().Kind() {
	case KindBool:
		return h.Value().Bool()
	case KindNumber:
		return h.Value().Number() != 0
	case KindString:
		return h.Value().Str() != ""
	default:
		return false
	}
}

// WriteValue writes h's string representation to ctx's output sink,
// without a trailing newline (callers that need one, like the Print
// statement, append it themselves). A ClassInstance prints the result
// of calling its zero-argument __str__ if one is defined, otherwise
// an implementation-defined object identity. An empty holder (None)
// writes the literal text "None".
func WriteValue(w io.Writer, h Holder, ctx Context) error {
	if h.IsEmpty() {
		_, err := io.WriteString(w, "None")
		return err
	}
	v := h.Value()
	switch v.Kind() {
	case KindNumber:
		_, err := fmt.Fprintf(w, "%d", v.Number())
		return err
	case KindString:
		_, err := io.WriteString(w, v.Str())
		return err
	case KindBool:
		if v.Bool() {
			_, err := io.WriteString(w, "True")
			return err
		}
		_, err := io.WriteString(w, "False")
		return err
	case KindClass:
		_, err := fmt.Fprintf(w, "Class %s", v.Class().Name)
		return err
	case KindInstance:
		inst := v.Instance()
		if m, ok := inst.Class.GetMethod("__str__"); ok && len(m.Params) == 0 {
			result, err := Call(h, "__str__", nil, ctx, Position{})
			if err != nil {
				return err
			}
			return WriteValue(w, result, ctx)
		}
		_, err := fmt.Fprintf(w, "<%s object at %p>", inst.Class.Name, inst)
		return err
	default:
		return nil
	}
}

// StringifyToString renders h the way Print does, but into a string
// rather than an io.Writer, for the Stringify expression node.
func StringifyToString(h Holder, ctx Context) (string, error) {
	var buf bytes.Buffer
	if err := WriteValue(&buf, h, ctx); err != nil {
		return "", err
	}
	return buf.String(), nil
}
