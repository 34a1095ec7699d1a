package idgen

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestEncodeBase62_KnownValues(t *testing.T) {
	cases := []struct {
		n    uint64
		want string
	}{
		{0, "0"}, // 0 编码为 "0"，不是空串
		{1, "1"},
		{9, "9"},
		{10, "a"},
		{35, "z"},
		{36, "A"},
		{61, "Z"},
		{62, "10"},
		{3843, "ZZ"}, // 62^2 - 1
		{3844, "100"},
	}
	for _, c := range cases {
		if got := EncodeBase62(c.n); got != c.want {
			t.Fatalf("EncodeBase62(%d): got %q, want %q", c.n, got, c.want)
		}
	}
}

func TestBase62_RoundTrip(t *testing.T) {
	samples := []uint64{
		0, 1, 61, 62, 4095,
		1 << 22, 1 << 32,
		uint64(math.MaxInt64), // 2^63 - 1，雪花 ID 的上界
		math.MaxUint64,
	}
	for _, x := range samples {
		s := EncodeBase62(x)
		got, err := DecodeBase62(s)
		if err != nil {
			t.Fatalf("DecodeBase62(%q): %v", s, err)
		}
		if got != x {
			t.Fatalf("round trip %d -> %q -> %d", x, s, got)
		}
		// 规范字符串上的反向定律
		if back := EncodeBase62(got); back != s {
			t.Fatalf("encode(decode(%q)) = %q", s, back)
		}
	}
}

func TestEncodeBase62_AlphabetClosureAndLength(t *testing.T) {
	samples := []uint64{0, 1, 61, 62, 4095, 1 << 32, uint64(math.MaxInt64), math.MaxUint64}
	for _, x := range samples {
		s := EncodeBase62(x)
		if len(s) < 1 || len(s) > 11 {
			t.Fatalf("EncodeBase62(%d): length %d out of [1, 11]", x, len(s))
		}
		for i := 0; i < len(s); i++ {
			if !strings.ContainsRune(alphabet, rune(s[i])) {
				t.Fatalf("EncodeBase62(%d) = %q contains %q outside the alphabet", x, s, s[i])
			}
		}
	}
}

func TestDecodeBase62_Invalid(t *testing.T) {
	for _, s := range []string{"", "!!", "abc-def", " 1", "短码"} {
		if _, err := DecodeBase62(s); !errors.Is(err, ErrInvalidBase62) {
			t.Fatalf("DecodeBase62(%q): got err %v, want ErrInvalidBase62", s, err)
		}
	}
}
