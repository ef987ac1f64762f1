package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugFromName(t *testing.T) {
	cases := []struct {
		name     string
		expected string
	}{
		{"Drill", "drill"},
		{"Angle Grinder", "angle-grinder"},
		{"  Impact   Driver  ", "impact-driver"},
		{"Saw (Circular) 7.25\"", "saw-circular-725"},
		{"Brad_Nailer-18ga", "brad-nailer-18ga"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.expected, SlugFromName(tc.name), "name %q", tc.name)
	}
}

func TestDocumentNextIDs(t *testing.T) {
	doc := NewDocument(Admin{Email: "admin@example.com"})
	assert.Equal(t, 1, doc.NextUserID())
	assert.Equal(t, 1, doc.NextLogID())

	doc.Users = append(doc.Users, User{ID: 7})
	doc.Logs = append(doc.Logs, LogEntry{ID: 3}, LogEntry{ID: 9})
	assert.Equal(t, 8, doc.NextUserID())
	assert.Equal(t, 10, doc.NextLogID())
}

func TestDocumentLookups(t *testing.T) {
	doc := NewDocument(Admin{})
	doc.Tools = append(doc.Tools, Tool{ID: "drill"})
	doc.Rentals = append(doc.Rentals, Rental{ID: "r-1"})
	doc.Users = append(doc.Users, User{ID: 1, Email: "a@b.c"})

	assert.NotNil(t, doc.FindTool("drill"))
	assert.Nil(t, doc.FindTool("saw"))
	assert.NotNil(t, doc.FindRental("r-1"))
	assert.Nil(t, doc.FindRental("r-2"))
	assert.NotNil(t, doc.FindUserByEmail("a@b.c"))
	assert.Nil(t, doc.FindUserByEmail("x@y.z"))

	// Lookups return pointers into the document so mutations stick.
	doc.FindTool("drill").Rented = 2
	assert.Equal(t, 2, doc.Tools[0].Rented)
}
