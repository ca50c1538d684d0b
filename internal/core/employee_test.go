package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDecision(t *testing.T) {
	cases := map[string]struct {
		want LeaveStatus
		ok   bool
	}{
		"approved":   {LeaveStatusApproved, true},
		" Rejected ": {LeaveStatusRejected, true},
		"APPROVED":   {LeaveStatusApproved, true},
		"pending":    {"", false},
		"":           {"", false},
	}
	for input, tc := range cases {
		got, ok := ParseDecision(input)
		assert.Equal(t, tc.ok, ok, input)
		assert.Equal(t, tc.want, got, input)
	}
}

func TestParseLeaveType(t *testing.T) {
	got, ok := ParseLeaveType(" Emergency")
	assert.True(t, ok)
	assert.Equal(t, LeaveTypeEmergency, got)

	_, ok = ParseLeaveType("vacation")
	assert.False(t, ok)
}

func TestRole(t *testing.T) {
	assert.True(t, RoleHR.CanReview())
	assert.True(t, RoleAdmin.CanReview())
	assert.False(t, RoleEmployee.CanReview())
	assert.False(t, Role("ceo").Valid())
	assert.True(t, StatusInactive.Valid())
	assert.False(t, Status("active").Valid())
}
