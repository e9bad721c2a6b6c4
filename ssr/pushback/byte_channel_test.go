package pushback

import (
	"errors"
	"testing"
)

// TestGetNextByte checks that GetNextByte gets the next byte from the
// channel and then reports that the channel is done.
func TestGetNextByte(t *testing.T) {
	const want = 'x'

	ch := make(chan byte, 1)
	bc := New(ch)

	// Put one character on the channel and close it.
	ch <- want
	bc.Close()

	got1, err := bc.GetNextByte()
	if err != nil {
		t.Error(err)
	}
	if want != got1 {
		t.Errorf("want %c got %c", want, got1)
	}

	got2, gotError := bc.GetNextByte()
	if !errors.Is(gotError, ErrDone) {
		t.Errorf("want ErrDone, got %v", gotError)
	}
	if got2 != 0 {
		t.Errorf("want 0 byte, got %c", got2)
	}
}

// TestGetNextByteWithNilChannel checks the error for a nil channel.
func TestGetNextByteWithNilChannel(t *testing.T) {
	bc := New(nil)

	gotByte, gotError := bc.GetNextByte()
	if !errors.Is(gotError, ErrNilChannel) {
		t.Errorf("want ErrNilChannel, got %v", gotError)
	}
	if gotByte != 0 {
		t.Errorf("want 0 byte, got %c", gotByte)
	}
}

// TestPushBack checks that pushed back bytes come out first, and that
// bytes pushed back later come out before those pushed back earlier.
func TestPushBack(t *testing.T) {
	var testData = []struct {
		description string
		pushes      []string
		// reads is the number of bytes read before the pushes.
		reads int
		want  string
	}{
		{"none", nil, 0, "cd"},
		{"one", []string{"ab"}, 0, "abcd"},
		{"two", []string{"b", "a"}, 0, "abcd"},
		{"after read", []string{"xc"}, 1, "cxcd"},
		{"empty", []string{""}, 0, "cd"},
	}
	for _, td := range testData {
		t.Run(td.description, func(t *testing.T) {
			ch := make(chan byte, 2)
			bc := New(ch)
			ch <- 'c'
			ch <- 'd'
			bc.Close()

			got := ""
			for i := 0; i < td.reads; i++ {
				b, err := bc.GetNextByte()
				if err != nil {
					t.Fatal(err)
				}
				got += string(b)
			}
			for _, p := range td.pushes {
				bc.PushBack([]byte(p)...)
			}
			for {
				b, err := bc.GetNextByte()
				if err != nil {
					break
				}
				got += string(b)
			}
			if td.want != got {
				t.Errorf("want %s got %s", td.want, got)
			}
		})
	}
}

// TestPushBackPartlyRead checks that a run pushed back while an earlier
// run is partly read comes out before the rest of the earlier run.
func TestPushBackPartlyRead(t *testing.T) {
	ch := make(chan byte)
	bc := New(ch)
	bc.Close()

	bc.PushBack('a', 'b', 'c')
	if b, _ := bc.GetNextByte(); b != 'a' {
		t.Fatalf("want a got %c", b)
	}
	bc.PushBack('x')

	const want = "xbc"
	got := ""
	for {
		b, err := bc.GetNextByte()
		if err != nil {
			break
		}
		got += string(b)
	}
	if want != got {
		t.Errorf("want %s got %s", want, got)
	}
}
