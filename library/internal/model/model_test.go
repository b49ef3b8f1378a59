package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	t.Parallel()

	d := NewDate(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	require.NoError(t, err)
	require.Equal(t, `"2026-08-01"`, string(b))

	var got Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-01"`), &got))
	require.True(t, got.Equal(d.Time))

	var zero Date
	require.NoError(t, json.Unmarshal([]byte(`null`), &zero))
	require.True(t, zero.IsZero())

	require.Error(t, json.Unmarshal([]byte(`"01-08-2026"`), &got))
}

func TestBorrowRequestNormalize(t *testing.T) {
	t.Parallel()

	req := BorrowRequest{
		Book:   &Ref{ID: "b1"},
		Member: &Ref{ID: "m1"},
	}
	req.Normalize()
	require.Equal(t, "b1", req.BookID)
	require.Equal(t, "m1", req.MemberID)

	// explicit ids win over nested refs
	req = BorrowRequest{
		BookID: "b2",
		Book:   &Ref{ID: "b1"},
	}
	req.Normalize()
	require.Equal(t, "b2", req.BookID)
}

func TestLoanUpdateRequestNormalize(t *testing.T) {
	t.Parallel()

	ret := NewDate(time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC))

	var tests = []struct {
		name string
		req  LoanUpdateRequest
		want Status
	}{
		{
			name: "returned when returnDate set",
			req:  LoanUpdateRequest{ReturnDate: &ret},
			want: StatusReturned,
		},
		{
			name: "borrowed when returnDate empty",
			req:  LoanUpdateRequest{},
			want: StatusBorrowed,
		},
		{
			name: "explicit status kept",
			req:  LoanUpdateRequest{Status: StatusBorrowed, ReturnDate: &ret},
			want: StatusBorrowed,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.req.Normalize()
			require.Equal(t, tt.want, tt.req.Status)
		})
	}
}
