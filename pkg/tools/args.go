package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Arguments holds the decoded JSON arguments of a tool call.
type Arguments map[string]interface{}

// Has reports whether key is present with a non-null value.
func (a Arguments) Has(key string) bool {
	v, ok := a[key]
	return ok && v != nil
}

// Bind decodes the arguments into target, a pointer to a tool's input struct
// with json tags. Fields keep their preset values when the key is absent or
// null, so defaults are assigned before calling Bind. Every key in required
// must be present and non-null.
//
//	input := NavigateInput{WaitUntil: "networkidle"}
//	if err := tools.Bind(args, &input, "url"); err != nil {
//		return "", err
//	}
func Bind(args Arguments, target interface{}, required ...string) error {
	for _, key := range required {
		if !args.Has(key) {
			return missingArgument(key)
		}
	}

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]interface{}(args)
	if err := req.BindArguments(target); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return wrongType(typeErr.Field, expectedType(target, typeErr))
		}
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// expectedType names the JSON type declared for the argument that failed to
// decode, looked up by json tag on the target struct.
func expectedType(target interface{}, typeErr *json.UnmarshalTypeError) string {
	key := strings.SplitN(typeErr.Field, ".", 2)[0]
	t := reflect.TypeOf(target)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Struct {
		for i := 0; i < t.NumField(); i++ {
			field := t.Field(i)
			if name := strings.Split(field.Tag.Get("json"), ",")[0]; name == key {
				return describeType(field.Type)
			}
		}
	}
	return describeType(typeErr.Type)
}

func describeType(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Ptr:
		return describeType(t.Elem())
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "a boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "an integer"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.Slice, reflect.Array:
		switch t.Elem().Kind() {
		case reflect.String:
			return "an array of strings"
		case reflect.Map, reflect.Struct:
			return "an array of objects"
		}
		return "an array"
	case reflect.Map, reflect.Struct:
		return "an object"
	}
	return "a valid value"
}
