package sequence

import (
	"strings"
	"testing"
)

func TestParseFASTA_DiscardsHeaders(t *testing.T) {
	in := ">seq1 some description\nACGT\nACGT\n>seq2\nTTTT\n"
	got, err := ParseFASTA(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "ACGTACGTTTTT"
	if string(got) != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParseFASTA_SkipsBlankLines(t *testing.T) {
	in := ">seq1\nACGT\n\nACGT\n"
	got, err := ParseFASTA(strings.NewReader(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "ACGTACGT" {
		t.Fatalf("got %q", got)
	}
}
