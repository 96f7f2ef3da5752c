package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/blogem/useradmin/models"
)

// NoUserChanges is the audit detail for an update that changed nothing
const NoUserChanges = "User updated with no property changes"

const updatedUserPrefix = "Updated user: "

// DescribeUserChanges renders the tracked fields that differ between the stored
// user and the submitted values, e.g.
// "Updated user: Email changed from 'old@x.com' to 'new@x.com'".
// Fields are compared in a fixed order: forename, surname, email, date of birth, active.
func DescribeUserChanges(before *models.User, after *models.UserForm) string {
	var changes []string

	changed := func(label, from, to string) {
		changes = append(changes, fmt.Sprintf("%s changed from '%s' to '%s'", label, from, to))
	}

	if before.Forename != after.Forename {
		changed("Forename", before.Forename, after.Forename)
	}
	if before.Surname != after.Surname {
		changed("Surname", before.Surname, after.Surname)
	}
	if before.Email != after.Email {
		changed("Email", before.Email, after.Email)
	}
	if !models.SameDate(before.DateOfBirth, after.DateOfBirth) {
		changed("Date of birth",
			models.FormatDayMonthYear(before.DateOfBirth),
			models.FormatDayMonthYear(after.DateOfBirth))
	}
	if before.IsActive != after.IsActive {
		changed("Active", strconv.FormatBool(before.IsActive), strconv.FormatBool(after.IsActive))
	}

	if len(changes) == 0 {
		return NoUserChanges
	}
	return updatedUserPrefix + strings.Join(changes, ", ")
}
