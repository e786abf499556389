package models

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMergeIntoAppliesOnlyDifferingFields(t *testing.T) {
	u := &User{
		FirstName: sql.NullString{String: "Ann", Valid: true},
		Nickname:  sql.NullString{String: "ann", Valid: true},
	}

	merged, changed := UserProfile{
		FirstName: "Ann",  // same value, no change
		LastName:  "Lee",  // new
		Nickname:  "anny", // differs
	}.MergeInto(u)

	assert.True(t, changed)
	assert.Equal(t, UserProfile{
		FirstName: "Ann",
		LastName:  "Lee",
		Nickname:  "anny",
	}, merged)
}

func TestMergeIntoNoChanges(t *testing.T) {
	u := &User{
		FirstName: sql.NullString{String: "Ann", Valid: true},
		Gender:    sql.NullString{String: "f", Valid: true},
	}

	merged, changed := UserProfile{FirstName: "Ann"}.MergeInto(u)
	assert.False(t, changed)
	assert.Equal(t, "Ann", merged.FirstName)
	assert.Equal(t, "f", merged.Gender)
}

func TestMergeIntoEmptyFieldsLeaveValues(t *testing.T) {
	u := &User{AvatarURL: sql.NullString{String: "http://a/x.png", Valid: true}}

	merged, changed := UserProfile{}.MergeInto(u)
	assert.False(t, changed)
	assert.Equal(t, "http://a/x.png", merged.AvatarURL)
}
