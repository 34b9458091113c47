package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidCourseCode(t *testing.T) {
	valid := []string{"CS101", "MATH2024", "EE42", "BIOCHEM101"}
	for _, code := range valid {
		assert.True(t, IsValidCourseCode(code), code)
	}

	invalid := []string{"", "cs101", "101CS", "C1", "CS", "CS1", "CS10123", "TOOLONGDEPT101"}
	for _, code := range invalid {
		assert.False(t, IsValidCourseCode(code), code)
	}
}
