package source

import "testing"

func TestDecode(t *testing.T) {
	tests := []struct {
		name      string
		in        []byte
		charset   string
		want      string
		converted bool
	}{
		{"utf8 passthrough", []byte("class Ä {}"), "", "class Ä {}", false},
		{"explicit utf8", []byte("x"), "UTF-8", "x", false},
		{"latin1", []byte{'c', 0xE9}, "iso-8859-1", "cé", true},
		{"utf16le bom", []byte{0xFF, 0xFE, 'a', 0x00, 'b', 0x00}, "", "ab", true},
		{"utf16be bom", []byte{0xFE, 0xFF, 0x00, 'a'}, "", "a", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, converted, err := Decode(tt.in, tt.charset)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if converted != tt.converted {
				t.Errorf("converted = %v, want %v", converted, tt.converted)
			}
		})
	}
}

func TestDecodeUnknownCharset(t *testing.T) {
	if _, _, err := Decode([]byte("x"), "klingon-8"); err == nil {
		t.Fatal("expected error for unknown charset")
	}
}
