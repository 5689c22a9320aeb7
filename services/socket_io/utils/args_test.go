package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseObject(t *testing.T) {
	obj, ok := ParseObject([]interface{}{map[string]interface{}{"a": "b"}})
	assert.True(t, ok)
	assert.Equal(t, "b", obj["a"])

	_, ok = ParseObject(nil)
	assert.False(t, ok)

	_, ok = ParseObject([]interface{}{"not an object"})
	assert.False(t, ok)
}

func TestParseString(t *testing.T) {
	s, ok := ParseString([]interface{}{"hello"})
	assert.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = ParseString([]interface{}{42})
	assert.False(t, ok)

	_, ok = ParseString(nil)
	assert.False(t, ok)
}

func TestGetString(t *testing.T) {
	obj := map[string]interface{}{"name": "Alice", "count": 3.0}
	assert.Equal(t, "Alice", GetString(obj, "name"))
	assert.Empty(t, GetString(obj, "count"))
	assert.Empty(t, GetString(obj, "missing"))
}

func TestGetInt(t *testing.T) {
	obj := map[string]interface{}{"index": 2.0, "name": "x"}

	n, ok := GetInt(obj, "index")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = GetInt(obj, "name")
	assert.False(t, ok)

	_, ok = GetInt(obj, "missing")
	assert.False(t, ok)
}

func TestGetStringSlice(t *testing.T) {
	obj := map[string]interface{}{
		"likes": []interface{}{"tea", "dogs", 7.0},
		"bio":   "text",
	}

	assert.Equal(t, []string{"tea", "dogs", ""}, GetStringSlice(obj, "likes"))
	assert.Nil(t, GetStringSlice(obj, "bio"))
	assert.Nil(t, GetStringSlice(obj, "missing"))
}
