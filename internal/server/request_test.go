package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatNumberCoercion(t *testing.T) {
	var payload struct {
		Quoted  *FloatNumber `json:"quoted"`
		Plain   *FloatNumber `json:"plain"`
		Null    *FloatNumber `json:"null"`
		Missing *FloatNumber `json:"missing"`
		Seats   *IntNumber   `json:"seats"`
	}

	raw := `{"quoted":"12.5","plain":3.75,"null":null,"seats":"4"}`
	require.NoError(t, json.Unmarshal([]byte(raw), &payload))

	require.NotNil(t, payload.Quoted)
	assert.Equal(t, 12.5, *payload.Quoted.Ptr())
	require.NotNil(t, payload.Plain)
	assert.Equal(t, 3.75, *payload.Plain.Ptr())
	assert.Nil(t, payload.Missing)
	assert.Nil(t, payload.Missing.Ptr())
	require.NotNil(t, payload.Seats)
	assert.Equal(t, 4, *payload.Seats.Ptr())
}

func TestFloatNumberRejectsGarbage(t *testing.T) {
	var v FloatNumber
	assert.Error(t, json.Unmarshal([]byte(`"not-a-number"`), &v))
	assert.Error(t, json.Unmarshal([]byte(`true`), &v))
}

func TestFloatNumberEmptyStringIsZeroValue(t *testing.T) {
	var v FloatNumber
	require.NoError(t, json.Unmarshal([]byte(`""`), &v))
	assert.Equal(t, FloatNumber(0), v)
}

func TestListParamsFromRequest(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/packages", nil)
		p := listParamsFromRequest(req)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Empty(t, p.Search)
		assert.Nil(t, p.Verified)
		assert.Nil(t, p.Read)
	})

	t.Run("all params", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet,
			"/api/users?page=3&limit=25&search=martin&role=CARRIER&verified=true&read=false", nil)
		p := listParamsFromRequest(req)
		assert.Equal(t, 3, p.Page)
		assert.Equal(t, 25, p.Limit)
		assert.Equal(t, "martin", p.Search)
		assert.Equal(t, "CARRIER", p.Role)
		require.NotNil(t, p.Verified)
		assert.True(t, *p.Verified)
		require.NotNil(t, p.Read)
		assert.False(t, *p.Read)
	})

	t.Run("malformed values fall back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/packages?page=zero&limit=-5&verified=maybe", nil)
		p := listParamsFromRequest(req)
		assert.Equal(t, 1, p.Page)
		assert.Equal(t, 10, p.Limit)
		assert.Nil(t, p.Verified)
	})
}
