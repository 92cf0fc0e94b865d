package model

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_WireFormat(t *testing.T) {
	d := NewDate(2011, time.April, 17)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2011/04/17"`, string(b))
}

func TestDate_UnmarshalAcceptsBothLayouts(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`"2011/04/17"`), &d))
	assert.Equal(t, NewDate(2011, time.April, 17), d)

	// Fallback ISO para clientes que mandan yyyy-MM-dd.
	require.NoError(t, json.Unmarshal([]byte(`"2011-04-17"`), &d))
	assert.Equal(t, NewDate(2011, time.April, 17), d)
}

func TestDate_UnmarshalEmptyAndNull(t *testing.T) {
	d := NewDate(2011, time.April, 17)
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	d = NewDate(2011, time.April, 17)
	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())
}

func TestDate_UnmarshalRejectsGarbage(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"17/04/2011"`), &d))
}

func TestPet_RoundTripKeepsBirthDate(t *testing.T) {
	bd := NewDate(2011, time.April, 17)
	p := Pet{ID: 1, Name: "Rosy", BirthDate: &bd, Type: &PetType{ID: 2, Name: "dog"}, OwnerID: 3}

	b, err := json.Marshal(p)
	require.NoError(t, err)

	var got Pet
	require.NoError(t, json.Unmarshal(b, &got))
	require.NotNil(t, got.BirthDate)
	assert.Equal(t, "2011/04/17", got.BirthDate.String())
}
