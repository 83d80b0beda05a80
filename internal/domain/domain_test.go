package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGrid(t *testing.T) {
	want := []string{
		"08:00 - 09:00",
		"09:00 - 10:00",
		"10:00 - 11:00",
		"11:00 - 12:00",
		"12:00 - 13:00",
		"13:00 - 14:00",
		"14:00 - 15:00",
		"15:00 - 16:00",
	}

	assert.Equal(t, want, SlotLabels())

	for i := 1; i < len(SlotGrid); i++ {
		assert.Equal(t, SlotGrid[i-1].EndHour, SlotGrid[i].StartHour, "slots must be contiguous")
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		label   string
		want    int
		wantErr bool
	}{
		{name: "canonical", label: "10:00 - 11:00", want: 10},
		{name: "compact", label: "10:00-11:00", want: 10},
		{name: "padded", label: " 15:00 -  16:00 ", want: 15},
		{name: "outside grid", label: "16:00 - 17:00", wantErr: true},
		{name: "half hour", label: "08:30 - 09:30", wantErr: true},
		{name: "garbage", label: "morning", wantErr: true},
		{name: "empty", label: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := ParseSlot(tt.label)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownSlot)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, slot.StartHour)
		})
	}
}

func TestSlotStartOn(t *testing.T) {
	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	start := SlotGrid[1].StartOn(date)

	assert.Equal(t, time.Date(2025, 6, 1, 6, 0, 0, 0, time.UTC), start.UTC())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, BusinessLocation, d.Location())

	_, err = ParseDate("2025-02-30")
	assert.Error(t, err)

	_, err = ParseDate("01/06/2025")
	assert.Error(t, err)
}

func TestDateComparisonsUseBusinessTimezone(t *testing.T) {
	// 22:30 UTC 31 мая = 01:30 1 июня в Антананариву
	now := time.Date(2025, 5, 31, 22, 30, 0, 0, time.UTC)

	may31 := time.Date(2025, 5, 31, 0, 0, 0, 0, time.UTC)
	june1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(may31, now))
	assert.True(t, IsToday(june1, now))
	assert.False(t, IsDateInPast(june1, now))
}

func TestParseReservationStatus(t *testing.T) {
	for _, s := range []string{"Pending", "Confirmed", "Cancelled"} {
		status, err := ParseReservationStatus(s)
		require.NoError(t, err)
		assert.Equal(t, s, string(status))
	}

	for _, s := range []string{"confirmed", "Done", ""} {
		_, err := ParseReservationStatus(s)
		assert.ErrorIs(t, err, ErrInvalidStatus, s)
	}
}

func TestConfirmationReference(t *testing.T) {
	id := uuid.MustParse("3f2a9c1e-7b4d-4e2a-9f10-2b6c8d4e5a71")
	r := Reservation{ID: id}

	assert.Equal(t, "RVT-3F2A9C1E", r.ConfirmationReference())
	assert.Equal(t, r.ConfirmationReference(), ConfirmationReference(id), "reference must be deterministic")
}

func TestReservationIsActive(t *testing.T) {
	assert.True(t, (&Reservation{Status: StatusPending}).IsActive())
	assert.True(t, (&Reservation{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Reservation{Status: StatusCancelled}).IsActive())
}
