package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDrivingLicense_IsValid(t *testing.T) {
	l := DrivingLicense{Number: "AB123", ExpiryDate: date(2028, 6, 5)}

	assert.True(t, l.IsValid(date(2028, 6, 4)))
	assert.False(t, l.IsValid(date(2028, 6, 5)), "license expiring that day is not valid")
	assert.False(t, l.IsValid(date(2028, 6, 6)))
	assert.True(t, l.IsValid(time.Date(2028, 6, 4, 23, 59, 0, 0, time.UTC)))
}

func TestDrivingLicense_IsValidFor(t *testing.T) {
	l := DrivingLicense{Number: "AB123", ExpiryDate: date(2028, 6, 5)}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{name: "ends before expiry", start: date(2028, 6, 1), end: date(2028, 6, 4), want: true},
		{name: "ends on expiry", start: date(2028, 6, 1), end: date(2028, 6, 5), want: false},
		{name: "ends after expiry", start: date(2028, 6, 1), end: date(2028, 6, 9), want: false},
		{name: "starts after expiry", start: date(2028, 7, 1), end: date(2028, 7, 2), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.IsValidFor(mustRange(t, tt.start, tt.end)))
		})
	}
}

func TestUser_CanDriveFor(t *testing.T) {
	u := User{Name: "Alice", License: DrivingLicense{Number: "AB123", ExpiryDate: date(2030, 1, 1)}}

	assert.True(t, u.CanDriveFor(mustRange(t, date(2028, 6, 1), date(2028, 6, 5))))
	assert.False(t, u.CanDriveFor(mustRange(t, date(2029, 12, 30), date(2030, 1, 1))))
}
