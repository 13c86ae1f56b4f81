package content

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDuration(t *testing.T) {
	cases := []struct {
		from, to string
		want     string
	}{
		{"2024-01-01", "2024-01-10", "9 days"},
		{"2024-01-01", "2024-01-02", "1 day"},
		{"2024-01-01", "2024-01-01", "0 day"},
		{"2024-01-01", "2024-01-31", "1 month"},
		{"2024-01-01", "2024-02-01", "1 month 1 day"},
		{"2024-01-01", "2024-04-01", "3 months 1 day"},
		{"2024-01-01", "2024-03-01", "2 months"},
		{"2023-01-01", "2024-01-01", "12 months 5 days"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Duration(date(tc.from), date(tc.to)), "%s..%s", tc.from, tc.to)
	}
}

func TestDuration_Symmetric(t *testing.T) {
	a, b := date("2024-01-01"), date("2024-02-15")
	assert.Equal(t, Duration(a, b), Duration(b, a))
}

func TestDuration_PartialDayRoundsUp(t *testing.T) {
	from := date("2024-01-01")
	assert.Equal(t, "1 day", Duration(from, from.Add(2*time.Hour)))
	assert.Equal(t, "2 days", Duration(from, from.Add(25*time.Hour)))
}
