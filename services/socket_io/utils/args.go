package socketio_utils

// Helpers to unpack socket.io event arguments defensively. Handlers must
// never panic on malformed client input, so every cast is checked.

// ParseObject returns the first argument as a JSON object, or false when
// it is missing or has another shape.
func ParseObject(args []interface{}) (map[string]interface{}, bool) {
	if len(args) < 1 {
		return nil, false
	}
	obj, ok := args[0].(map[string]interface{})
	return obj, ok
}

// ParseString returns the first argument as a string.
func ParseString(args []interface{}) (string, bool) {
	if len(args) < 1 {
		return "", false
	}
	s, ok := args[0].(string)
	return s, ok
}

// GetString reads a string field from a decoded JSON object.
func GetString(obj map[string]interface{}, key string) string {
	s, _ := obj[key].(string)
	return s
}

// GetInt reads a numeric field from a decoded JSON object. JSON numbers
// decode as float64.
func GetInt(obj map[string]interface{}, key string) (int, bool) {
	f, ok := obj[key].(float64)
	if !ok {
		return 0, false
	}
	return int(f), true
}

// GetStringSlice reads an array-of-strings field from a decoded JSON
// object. Non-string elements become empty strings.
func GetStringSlice(obj map[string]interface{}, key string) []string {
	raw, ok := obj[key].([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, len(raw))
	for i, v := range raw {
		s, _ := v.(string)
		out[i] = s
	}
	return out
}
