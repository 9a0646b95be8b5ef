package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestWorkshopHasStudent(t *testing.T) {
	w := Workshop{EnrolledStudents: datatypes.NewJSONSlice([]string{"u1", "u2"})}

	assert.True(t, w.HasStudent("u1"))
	assert.False(t, w.HasStudent("u3"))
}

func TestWorkshopIsFull(t *testing.T) {
	w := Workshop{
		EnrolledStudents: datatypes.NewJSONSlice([]string{"u1", "u2"}),
		MaxStudents:      2,
	}
	assert.True(t, w.IsFull())

	w.MaxStudents = 3
	assert.False(t, w.IsFull())

	// Zero capacity means unlimited
	w.MaxStudents = 0
	assert.False(t, w.IsFull())
}
