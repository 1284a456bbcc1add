package sqlite

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aanand-mishra/student-records-api/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTemp(t *testing.T) *SQLite {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "students.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestEmptyDatabase(t *testing.T) {
	students, err := openTemp(t).GetStudents()
	require.NoError(t, err)
	assert.NotNil(t, students)
	assert.Empty(t, students)
}

func TestReplaceThenGetKeepsOrder(t *testing.T) {
	db := openTemp(t)

	in := []types.Student{
		{
			StudentID:      9,
			PhoneNumber:    "+71234567890",
			FirstName:      "Ivan",
			LastName:       "Ivanov",
			DateOfBirth:    types.NewDate(1998, time.May, 15),
			Email:          "ivan@example.com",
			Address:        "Moscow, Lenina st. 10",
			EnrollmentYear: 2017,
			Major:          types.MajorInformatics,
			Course:         3,
			SpecialNotes:   "Prefers morning classes",
		},
		{
			StudentID:      4,
			PhoneNumber:    "+79876543210",
			FirstName:      "Maria",
			LastName:       "Petrova",
			DateOfBirth:    types.NewDate(2000, time.November, 2),
			Email:          "maria@example.com",
			Address:        "Saint Petersburg, Nevsky pr. 25",
			EnrollmentYear: 2018,
			Major:          types.MajorEconomics,
			Course:         2,
		},
	}
	require.NoError(t, db.ReplaceStudents(in))

	out, err := db.GetStudents()
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, 9, out[0].StudentID)
	assert.Equal(t, 4, out[1].StudentID)
	assert.Equal(t, in[0].DateOfBirth.String(), out[0].DateOfBirth.String())
	assert.Equal(t, types.MajorEconomics, out[1].Major)
	assert.Equal(t, "Prefers morning classes", out[0].SpecialNotes)
	assert.Equal(t, "", out[1].SpecialNotes)
}

func TestNewIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "students.db")

	first, err := New(path)
	require.NoError(t, err)
	require.NoError(t, first.ReplaceStudents([]types.Student{{StudentID: 1, Major: types.MajorLaw, Course: 1}}))
	require.NoError(t, first.Close())

	second, err := New(path)
	require.NoError(t, err)
	defer second.Close()

	students, err := second.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestReplaceStudentsTwiceKeepsOneCopy(t *testing.T) {
	db := openTemp(t)
	batch := []types.Student{{StudentID: 1, Major: types.MajorLaw, Course: 1}}

	require.NoError(t, db.ReplaceStudents(batch))
	require.NoError(t, db.ReplaceStudents(batch))

	students, err := db.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 1)
}

func TestReplaceStudentsDropsOldRecords(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.ReplaceStudents([]types.Student{
		{StudentID: 1, Course: 1},
		{StudentID: 2, Course: 2},
	}))
	require.NoError(t, db.ReplaceStudents([]types.Student{{StudentID: 3, Course: 3}}))

	students, err := db.GetStudents()
	require.NoError(t, err)
	require.Len(t, students, 1)
	assert.Equal(t, 3, students[0].StudentID)
}

func TestReplaceStudentsKeepsDuplicateIDs(t *testing.T) {
	db := openTemp(t)

	require.NoError(t, db.ReplaceStudents([]types.Student{
		{StudentID: 7, Course: 1},
		{StudentID: 7, Course: 2},
	}))

	students, err := db.GetStudents()
	require.NoError(t, err)
	assert.Len(t, students, 2)
}
