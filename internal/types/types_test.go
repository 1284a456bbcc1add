package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMajor(t *testing.T) {
	t.Run("case is ignored", func(t *testing.T) {
		m, err := ParseMajor("InFormatics")
		require.NoError(t, err)
		assert.Equal(t, MajorInformatics, m)
	})

	t.Run("surrounding whitespace is not trimmed", func(t *testing.T) {
		_, err := ParseMajor(" informatics ")
		assert.Error(t, err)
	})

	t.Run("every listed major parses", func(t *testing.T) {
		for _, known := range Majors {
			m, err := ParseMajor(string(known))
			require.NoError(t, err)
			assert.Equal(t, known, m)
		}
	})

	t.Run("unknown major fails", func(t *testing.T) {
		_, err := ParseMajor("astrology")
		assert.Error(t, err)
	})
}

func TestMajorValidIsExact(t *testing.T) {
	assert.True(t, MajorLaw.Valid())
	assert.False(t, Major("Law").Valid())
	assert.False(t, Major("").Valid())
}

func TestDateJSON(t *testing.T) {
	var s Student
	err := json.Unmarshal([]byte(`{"student_id": 7, "date_of_birth": "2001-09-14"}`), &s)
	require.NoError(t, err)
	assert.Equal(t, 2001, s.DateOfBirth.Year())
	assert.Equal(t, time.September, s.DateOfBirth.Month())
	assert.Equal(t, 14, s.DateOfBirth.Day())

	out, err := json.Marshal(s.DateOfBirth)
	require.NoError(t, err)
	assert.JSONEq(t, `"2001-09-14"`, string(out))
}

func TestDateRejectsTimestamps(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"2001-09-14T10:00:00Z"`), &d)
	assert.Error(t, err)
}

func TestZeroDateMarshalsAsNull(t *testing.T) {
	out, err := json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
	assert.Equal(t, "", Date{}.String())
}
