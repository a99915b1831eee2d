package entities

import "testing"

func TestFormatOrderNumber(t *testing.T) {
	cases := []struct {
		n    int
		want string
	}{
		{1, "ORD-001"},
		{47, "ORD-047"},
		{999, "ORD-999"},
		{1000, "ORD-1000"},
	}
	for _, c := range cases {
		if got := FormatOrderNumber(c.n); got != c.want {
			t.Fatalf("FormatOrderNumber(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}

func TestParseOrderNumberSuffix(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		n, ok := ParseOrderNumberSuffix("ORD-047")
		if !ok || n != 47 {
			t.Fatalf("expected (47, true), got (%d, %v)", n, ok)
		}
	})

	t.Run("wide suffix", func(t *testing.T) {
		n, ok := ParseOrderNumberSuffix("ORD-1000")
		if !ok || n != 1000 {
			t.Fatalf("expected (1000, true), got (%d, %v)", n, ok)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		for _, in := range []string{"", "ORD-", "ORD-x1", "XYZ-001", "ord-001", "ORD-001 "} {
			if _, ok := ParseOrderNumberSuffix(in); ok {
				t.Fatalf("expected %q to be rejected", in)
			}
		}
	})
}

func TestMaxOrderNumberSuffix(t *testing.T) {
	t.Run("picks the max and skips malformed", func(t *testing.T) {
		numbers := []string{"ORD-001", "ORD-003", "garbage", "ORD-002"}
		if got := MaxOrderNumberSuffix(numbers); got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("empty means zero", func(t *testing.T) {
		if got := MaxOrderNumberSuffix(nil); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})

	t.Run("gaps are fine", func(t *testing.T) {
		if got := MaxOrderNumberSuffix([]string{"ORD-001", "ORD-047"}); got != 47 {
			t.Fatalf("expected 47, got %d", got)
		}
	})
}
