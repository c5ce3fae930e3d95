// file: internals/helpers/optional_test.go
package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tiga kasus JSON yang harus bisa dibedakan: tidak dikirim, null, ada nilai
func TestOptional_AbsentVsNullVsValue(t *testing.T) {
	type payload struct {
		ImageLink Optional[string] `json:"image_link"`
	}

	var absent payload
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.False(t, absent.ImageLink.Set)

	var null payload
	require.NoError(t, json.Unmarshal([]byte(`{"image_link": null}`), &null))
	assert.True(t, null.ImageLink.Set)
	assert.False(t, null.ImageLink.Valid)
	assert.Nil(t, null.ImageLink.Ptr())

	var value payload
	require.NoError(t, json.Unmarshal([]byte(`{"image_link": "https://example.com/a.png"}`), &value))
	assert.True(t, value.ImageLink.Set)
	assert.True(t, value.ImageLink.Valid)
	require.NotNil(t, value.ImageLink.Ptr())
	assert.Equal(t, "https://example.com/a.png", *value.ImageLink.Ptr())
}

func TestOptional_MarshalRoundTrip(t *testing.T) {
	v := Optional[string]{Set: true, Valid: true, Value: "x"}
	b, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, `"x"`, string(b))

	n := Optional[string]{Set: true, Valid: false}
	b, err = json.Marshal(n)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
