package idgen

import (
	"errors"
	"math"
	"testing"
)

func TestSqids_RoundTrip(t *testing.T) {
	for _, x := range []uint64{0, 1, 62, 4095, 1 << 32, uint64(math.MaxInt64)} {
		s, err := SqidsEncode(x)
		if err != nil {
			t.Fatalf("SqidsEncode(%d): %v", x, err)
		}
		if len(s) < 3 {
			t.Fatalf("SqidsEncode(%d) = %q shorter than MinLength 3", x, s)
		}
		got, err := SqidsDecode(s)
		if err != nil {
			t.Fatalf("SqidsDecode(%q): %v", s, err)
		}
		if got != x {
			t.Fatalf("round trip %d -> %q -> %d", x, s, got)
		}
	}
}

func TestSqidsDecode_Invalid(t *testing.T) {
	for _, s := range []string{"", "!"} {
		if _, err := SqidsDecode(s); !errors.Is(err, ErrInvalidSqid) {
			t.Fatalf("SqidsDecode(%q): got err %v, want ErrInvalidSqid", s, err)
		}
	}
}
