package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(s string) Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return Date{Time: t}
}

func TestDate_JSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(date("2026-09-01"))
		require.NoError(t, err)
		require.Equal(t, `"2026-09-01"`, string(data))

		var d Date
		require.NoError(t, json.Unmarshal(data, &d))
		require.Equal(t, date("2026-09-01"), d)
	})

	t.Run("zero marshals as null", func(t *testing.T) {
		t.Parallel()
		data, err := json.Marshal(Date{})
		require.NoError(t, err)
		require.Equal(t, "null", string(data))
	})

	t.Run("null unmarshals as zero", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.NoError(t, json.Unmarshal([]byte("null"), &d))
		require.True(t, d.IsZero())
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()
		var d Date
		require.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
	})
}

func TestAddress_MissingKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		address Address
		want    []string
	}{
		{
			name:    "complete",
			address: Address{Street: "1 Main St", City: "Springfield", Zip: "12345", State: "IL"},
			want:    nil,
		},
		{
			name:    "empty",
			address: Address{},
			want:    []string{"street", "city", "zip", "state"},
		},
		{
			name:    "zip and state missing",
			address: Address{Street: "1 Main St", City: "Springfield"},
			want:    []string{"zip", "state"},
		},
		{
			name:    "whitespace counts as missing",
			address: Address{Street: "1 Main St", City: "  ", Zip: "12345", State: "IL"},
			want:    []string{"city"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.address.MissingKeys())
		})
	}
}

func TestReservation_ActiveOverdue(t *testing.T) {
	t.Parallel()

	today := date("2026-09-01")
	returned := date("2026-08-30")

	tests := []struct {
		name        string
		rsv         Reservation
		wantActive  bool
		wantOverdue bool
	}{
		{
			name:        "active, due in the future",
			rsv:         Reservation{ReturnDate: date("2026-09-10")},
			wantActive:  true,
			wantOverdue: false,
		},
		{
			name:        "active, due today",
			rsv:         Reservation{ReturnDate: date("2026-09-01")},
			wantActive:  true,
			wantOverdue: false,
		},
		{
			name:        "active, past due",
			rsv:         Reservation{ReturnDate: date("2026-08-20")},
			wantActive:  true,
			wantOverdue: true,
		},
		{
			name:        "returned, past due",
			rsv:         Reservation{ReturnDate: date("2026-08-20"), ReturnedAt: &returned},
			wantActive:  false,
			wantOverdue: false,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.wantActive, tt.rsv.Active())
			require.Equal(t, tt.wantOverdue, tt.rsv.Overdue(today))
		})
	}
}

func TestAddress_Scan(t *testing.T) {
	t.Parallel()

	var a Address
	require.NoError(t, a.Scan([]byte(`{"street":"1 Main St","city":"Springfield","zip":"12345","state":"IL"}`)))
	require.Equal(t, Address{Street: "1 Main St", City: "Springfield", Zip: "12345", State: "IL"}, a)

	var empty Address
	require.NoError(t, empty.Scan(nil))
	require.Equal(t, Address{}, empty)
}
