package conv

import "testing"

func TestAppendUint(t *testing.T) {
	cases := map[uint64]string{
		0:                    "0",
		7:                    "7",
		1234567:              "1234567",
		18446744073709551615: "18446744073709551615",
	}
	for n, want := range cases {
		if got := string(AppendUint([]byte("x="), n)); got != "x="+want {
			t.Fatalf("AppendUint(%d) = %q", n, got)
		}
	}
}

func TestAppendHex8(t *testing.T) {
	if got := string(AppendHex8(nil, 0x08)); got != "0x08" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendHex8(nil, 0xAF)); got != "0xaf" {
		t.Fatalf("got %q", got)
	}
}

func TestAppendInt(t *testing.T) {
	if got := string(AppendInt(nil, -3)); got != "-3" {
		t.Fatalf("got %q", got)
	}
	if got := string(AppendInt(nil, 28)); got != "28" {
		t.Fatalf("got %q", got)
	}
}
