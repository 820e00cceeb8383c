package dto

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "day first", in: "05/03/2024", want: "05/03/2024", ok: true},
		{name: "day first wins over month first", in: "01/02/2024", want: "01/02/2024", ok: true},
		{name: "iso", in: "2024-03-05", want: "05/03/2024", ok: true},
		{name: "single digits", in: "5/3/2024", want: "05/03/2024", ok: true},
		{name: "surrounding spaces", in: " 2024-03-05 ", want: "05/03/2024", ok: true},
		{name: "slashes in iso order", in: "2024/03/05", ok: false},
		{name: "month out of range", in: "05/13/2024", ok: false},
		{name: "empty", in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, ok := ParseDate(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, d.String())
			}
		})
	}
}

func TestParseDate_DayMonthOrder(t *testing.T) {
	d, ok := ParseDate("01/02/2024")
	require.True(t, ok)
	assert.Equal(t, time.February, d.Time().Month())
	assert.Equal(t, 1, d.Time().Day())
}

func TestParseISODate(t *testing.T) {
	d, ok := ParseISODate("2024-03-05")
	require.True(t, ok)
	assert.Equal(t, "05/03/2024", d.String())

	_, ok = ParseISODate("05/03/2024")
	assert.False(t, ok)
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Day *Date `json:"day"`
	}

	var p payload
	require.NoError(t, json.Unmarshal([]byte(`{"day":"2024-12-31"}`), &p))
	require.NotNil(t, p.Day)
	assert.True(t, p.Day.Valid())

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"day":"31/12/2024"}`, string(out))

	p = payload{}
	require.NoError(t, json.Unmarshal([]byte(`{"day":null}`), &p))
	assert.Nil(t, p.Day)
}

func TestDate_InvalidInputIsMarked(t *testing.T) {
	type payload struct {
		Day *Date `json:"day"`
	}

	for _, body := range []string{`{"day":"31/31/2024"}`, `{"day":"tomorrow"}`, `{"day":20240101}`} {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(body), &p), body)
		require.NotNil(t, p.Day, body)
		assert.False(t, p.Day.Valid(), body)
	}

	var d Date
	require.NoError(t, d.UnmarshalParam("not-a-date"))
	assert.False(t, d.Valid())
	require.NoError(t, d.UnmarshalParam("15/06/2025"))
	assert.True(t, d.Valid())
	assert.Equal(t, "15/06/2025", d.String())
}

func TestNewDate_TruncatesToUTCMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	d := NewDate(time.Date(2025, time.January, 2, 23, 30, 0, 0, loc))
	assert.Equal(t, time.Date(2025, time.January, 2, 0, 0, 0, 0, time.UTC), d.Time())
}
