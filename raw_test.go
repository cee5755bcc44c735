package rlp

import (
	"bytes"
	"errors"
	"testing"
)

func TestSplit(t *testing.T) {
	cases := []struct {
		in      string
		kind    Kind
		content string
		rest    string
	}{
		{"05", String, "05", ""},
		{"0501", String, "05", "01"},
		{"80", String, "", ""},
		{"83646f67c0", String, "646f67", "c0"},
		{"c0", List, "", ""},
		{"c3010203ff", List, "010203", "ff"},
		{"cc83646f6783676f6483636174", List, "83646f6783676f6483636174", ""},
	}
	for _, tc := range cases {
		k, content, rest, err := Split(unhex(t, tc.in))
		if err != nil {
			t.Fatalf("Split(%s) error: %v", tc.in, err)
		}
		if k != tc.kind || !bytes.Equal(content, unhex(t, tc.content)) || !bytes.Equal(rest, unhex(t, tc.rest)) {
			t.Fatalf("Split(%s) = %v, %x, %x", tc.in, k, content, rest)
		}
	}
}

func TestSplitRejects(t *testing.T) {
	for in, want := range map[string]error{
		"":     ErrTruncatedInput,
		"8100": ErrNonCanonicalSingleByte,
		"83aa": ErrTruncatedInput,
		"b800": ErrExtraLeadingZeros,
		"c201": ErrTruncatedInput,
	} {
		b := unhex(t, in)
		_, _, rest, err := Split(b)
		if !errors.Is(err, want) {
			t.Fatalf("Split(%s) error = %v, want %v", in, err, want)
		}
		if !bytes.Equal(rest, b) {
			t.Fatalf("Split(%s) rest = %x, want the whole input", in, rest)
		}
	}
}

func TestSplitStringAndList(t *testing.T) {
	s, rest, err := SplitString(unhex(t, "83646f67c0"))
	if err != nil || string(s) != "dog" || !bytes.Equal(rest, []byte{0xc0}) {
		t.Fatalf("SplitString = %q, %x, %v", s, rest, err)
	}
	if _, _, err := SplitString(unhex(t, "c0")); !errors.Is(err, ErrExpectedString) {
		t.Fatalf("SplitString(list) error = %v", err)
	}

	l, rest, err := SplitList(unhex(t, "c2010280"))
	if err != nil || !bytes.Equal(l, []byte{0x01, 0x02}) || !bytes.Equal(rest, []byte{0x80}) {
		t.Fatalf("SplitList = %x, %x, %v", l, rest, err)
	}
	if _, _, err := SplitList(unhex(t, "05")); !errors.Is(err, ErrExpectedList) {
		t.Fatalf("SplitList(byte) error = %v", err)
	}
}

func TestCountValues(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"05", 1},
		{"83646f67c0c105", 3},
		{"c7c0c1c0c3c0c1c0", 1},
		{"0102038180", 4},
	}
	for _, tc := range cases {
		n, err := CountValues(unhex(t, tc.in))
		if err != nil || n != tc.want {
			t.Fatalf("CountValues(%s) = %d, %v; want %d", tc.in, n, err, tc.want)
		}
	}

	_, err := CountValues(unhex(t, "c0c5"))
	var de *DecodeError
	if !errors.As(err, &de) || de.Offset != 1 || !errors.Is(err, ErrTruncatedInput) {
		t.Fatalf("CountValues(c0c5) error = %v", err)
	}
}
