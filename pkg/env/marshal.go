package env

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// MarshalEnv reflects over a config struct and renders .env content from its
// `env` tags, skipping zero values.
func MarshalEnv(c any) (string, error) {
	v := reflect.ValueOf(c)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return "", fmt.Errorf("expected pointer to struct, got %T", c)
	}
	v = v.Elem()
	t := v.Type()

	var lines []string
	for i := 0; i < v.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("env")
		if tag == "" || !field.IsExported() {
			continue
		}

		// Tag may carry options: "KEY,required,notEmpty"
		key := strings.Split(tag, ",")[0]
		if key == "" {
			continue
		}

		val := v.Field(i)
		if val.IsZero() {
			continue
		}

		lines = append(lines, fmt.Sprintf("%s=%s", key, formatValue(val)))
	}

	if len(lines) == 0 {
		return "", nil
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func formatValue(v reflect.Value) string {
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'f', -1, 64)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return fmt.Sprintf("%v", v.Interface())
	}
}
