package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/trivia-api/backend/internal/service"
)

// FlexInt accepts a JSON number or a string holding an integer. The
// browser client posts <select> values as strings.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s is not an integer", service.ErrUnprocessable, data)
	}
	*f = FlexInt(n)
	return nil
}

// blankJSON reports whether data is missing, null or a whitespace-only string.
func blankJSON(data []byte) bool {
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return true
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return false
	}
	return strings.TrimSpace(s) == ""
}

func flexInts(in []FlexInt) []int {
	out := make([]int, len(in))
	for i, v := range in {
		out[i] = int(v)
	}
	return out
}

// jsonFieldName returns the json tag name of field in the struct v points to.
func jsonFieldName(field string, v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	sf, ok := t.FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
	if name == "" {
		return field
	}
	return name
}
