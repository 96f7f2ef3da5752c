package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blogem/useradmin/models"
)

func TestDescribeUserChanges(t *testing.T) {
	before := &models.User{
		ID:          1,
		Forename:    "Amelia",
		Surname:     "Pond",
		Email:       "amelia@example.com",
		DateOfBirth: date(1989, 12, 11),
		IsActive:    true,
	}

	tests := []struct {
		name     string
		after    models.UserForm
		expected string
	}{
		{
			name:     "no changes",
			after:    models.UserForm{ID: 1, Forename: "Amelia", Surname: "Pond", Email: "amelia@example.com", DateOfBirth: date(1989, 12, 11), IsActive: true},
			expected: NoUserChanges,
		},
		{
			name:     "email only",
			after:    models.UserForm{ID: 1, Forename: "Amelia", Surname: "Pond", Email: "pond@example.com", DateOfBirth: date(1989, 12, 11), IsActive: true},
			expected: "Updated user: Email changed from 'amelia@example.com' to 'pond@example.com'",
		},
		{
			name:     "forename and surname in field order",
			after:    models.UserForm{ID: 1, Forename: "Amy", Surname: "Williams", Email: "amelia@example.com", DateOfBirth: date(1989, 12, 11), IsActive: true},
			expected: "Updated user: Forename changed from 'Amelia' to 'Amy', Surname changed from 'Pond' to 'Williams'",
		},
		{
			name: "every tracked field",
			after: models.UserForm{ID: 1, Forename: "Amy", Surname: "Williams", Email: "amy@example.com", DateOfBirth: date(1990, 1, 2), IsActive: false},
			expected: "Updated user: Forename changed from 'Amelia' to 'Amy', " +
				"Surname changed from 'Pond' to 'Williams', " +
				"Email changed from 'amelia@example.com' to 'amy@example.com', " +
				"Date of birth changed from '11/12/1989' to '02/01/1990', " +
				"Active changed from 'true' to 'false'",
		},
		{
			name:     "date of birth cleared",
			after:    models.UserForm{ID: 1, Forename: "Amelia", Surname: "Pond", Email: "amelia@example.com", IsActive: true},
			expected: "Updated user: Date of birth changed from '11/12/1989' to ''",
		},
		{
			name:     "active toggled",
			after:    models.UserForm{ID: 1, Forename: "Amelia", Surname: "Pond", Email: "amelia@example.com", DateOfBirth: date(1989, 12, 11), IsActive: false},
			expected: "Updated user: Active changed from 'true' to 'false'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DescribeUserChanges(before, &tt.after))
		})
	}
}

func TestDescribeUserChanges_DateSetFromNothing(t *testing.T) {
	before := &models.User{Forename: "A", Surname: "B", Email: "a@b.com"}
	after := &models.UserForm{Forename: "A", Surname: "B", Email: "a@b.com", DateOfBirth: date(2000, 6, 30)}

	assert.Equal(t, "Updated user: Date of birth changed from '' to '30/06/2000'", DescribeUserChanges(before, after))
}
