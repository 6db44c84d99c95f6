package model

import (
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeOfDayMarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"afternoon with seconds", "14:30:00", `"14:30:00"`},
		{"zero padded", "02:05:09", `"02:05:09"`},
		{"no seconds", "09:15", `"09:15:00"`},
		{"midnight", "00:00:00", `"00:00:00"`},
		{"end of day", "23:59:59", `"23:59:59"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tod, err := ParseTimeOfDay(tt.input)
			require.NoError(t, err)

			got, err := json.Marshal(tod)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestTimeOfDayMarshalNull(t *testing.T) {
	got, err := json.Marshal(TimeOfDay{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestParseTimeOfDayRejectsGarbage(t *testing.T) {
	_, err := ParseTimeOfDay("not a time")
	assert.Error(t, err)
}

func TestDateMarshalJSON(t *testing.T) {
	d, err := ParseDate("2026-03-14")
	require.NoError(t, err)

	got, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-03-14"`, string(got))

	got, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(got))
}

func TestOptionalIDUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    *OptionalID
		wantErr bool
	}{
		{"json null", `null`, &OptionalID{}, false},
		{"empty string", `""`, &OptionalID{}, false},
		{"literal null string", `"null"`, &OptionalID{}, false},
		{"numeric string", `"3"`, &OptionalID{Int32: 3, Valid: true}, false},
		{"number", `3`, &OptionalID{Int32: 3, Valid: true}, false},
		{"garbage", `"abc"`, nil, true},
		{"float", `3.5`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got OptionalID
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, *tt.want, got)
		})
	}
}

func TestOptionalIDAbsentFieldStaysUnset(t *testing.T) {
	var req ProfileRequest
	require.NoError(t, json.Unmarshal([]byte(`{"first_name":"A","last_name":"B"}`), &req))
	assert.False(t, req.DepartmentID.Valid)
	assert.Nil(t, req.DepartmentID.Ptr())
}

func TestEventFeeSerializesAsNumber(t *testing.T) {
	tod, err := ParseTimeOfDay("10:00:00")
	require.NoError(t, err)
	date, err := ParseDate("2026-01-20")
	require.NoError(t, err)

	e := Event{
		EventID:         1,
		EventName:       "Tech Symposium",
		Date:            date,
		Time:            tod,
		RegistrationFee: 49.99,
		DepartmentName:  "CSE",
	}
	raw, err := json.Marshal(e)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, 49.99, decoded["registration_fee"])
	assert.Equal(t, "10:00:00", decoded["time"])
	assert.Equal(t, "2026-01-20", decoded["date"])
	assert.Nil(t, decoded["sponsor_id"])
}

func TestTimeOfDayFromDriverMicroseconds(t *testing.T) {
	// A TIME column arrives as microseconds since midnight; 2h5m9s must
	// render zero padded.
	tod := TimeOfDay{pgtype.Time{Microseconds: (2*3600 + 5*60 + 9) * 1_000_000, Valid: true}}
	assert.Equal(t, "02:05:09", tod.String())
}
