package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlot_Overlaps(t *testing.T) {
	type args struct {
		a Slot
		b Slot
	}

	type testcase struct {
		name string
		args args
		want bool
	}

	tests := [...]testcase{
		{
			name: "identical",
			args: args{a: Slot{10, 20}, b: Slot{10, 20}},
			want: true,
		},
		{
			name: "contained",
			args: args{a: Slot{10, 20}, b: Slot{12, 15}},
			want: true,
		},
		{
			name: "partial left",
			args: args{a: Slot{10, 20}, b: Slot{5, 11}},
			want: true,
		},
		{
			name: "partial right",
			args: args{a: Slot{10, 20}, b: Slot{19, 30}},
			want: true,
		},
		{
			name: "abutting right is free",
			args: args{a: Slot{10, 20}, b: Slot{20, 30}},
			want: false,
		},
		{
			name: "abutting left is free",
			args: args{a: Slot{10, 20}, b: Slot{0, 10}},
			want: false,
		},
		{
			name: "disjoint",
			args: args{a: Slot{10, 20}, b: Slot{40, 50}},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.args.a.Overlaps(tt.args.b))
			// overlap is symmetric
			require.Equal(t, tt.want, tt.args.b.Overlaps(tt.args.a))
		})
	}
}

func TestNewSlot(t *testing.T) {
	at := time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

	s := NewSlot(at, 10*time.Minute)

	require.Equal(t, at.UnixMilli(), s[0])
	require.Equal(t, at.Add(10*time.Minute).UnixMilli(), s[1])

	iv := Interview{ScheduledAt: at, DurationMinutes: 10, Slot: s}
	require.Equal(t, at.Add(10*time.Minute), iv.EndTime())
	require.Equal(t, 10*time.Minute, iv.Duration())
}

func TestInterviewStatus_Active(t *testing.T) {
	require.True(t, StatusScheduled.Active())
	require.True(t, StatusInProgress.Active())
	require.False(t, StatusCompleted.Active())
	require.False(t, StatusCancelled.Active())
	require.False(t, StatusExpired.Active())
}

func TestInterviewStatus_JSON(t *testing.T) {
	raw, err := StatusInProgress.MarshalJSON()
	require.NoError(t, err)
	require.Equal(t, `"in_progress"`, string(raw))

	var s InterviewStatus
	require.NoError(t, s.UnmarshalJSON([]byte(`"expired"`)))
	require.Equal(t, StatusExpired, s)

	require.Error(t, s.UnmarshalJSON([]byte(`"paused"`)))
}
