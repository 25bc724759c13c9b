package textutil

import "testing"

func TestNormalizeTranscript(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \n\t ", ""},
		{
			"removes fillers",
			"So um this is uh basically a test you know",
			"So this is a test",
		},
		{
			"collapses whitespace",
			"hello    world\n\nagain",
			"hello world again",
		},
		{
			"fixes punctuation spacing",
			"hello , world . done",
			"hello, world. done",
		},
		{
			"collapses repeated punctuation",
			"wow!!! really... yes",
			"wow! really. yes",
		},
		{
			"filler inside word untouched",
			"drumming and likeness remain",
			"drumming and likeness remain",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTranscript(tt.in); got != tt.want {
				t.Errorf("NormalizeTranscript(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWords(t *testing.T) {
	got := Words("Hello, World! (testing) stuff.")
	want := []string{"hello", "world", "testing", "stuff"}
	if len(got) != len(want) {
		t.Fatalf("Words() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Words()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWordOverlap(t *testing.T) {
	a := []string{"neural", "network", "training"}
	b := []string{"training", "a", "neural", "net"}
	if got := WordOverlap(a, b); got != 2 {
		t.Errorf("WordOverlap() = %d, want 2", got)
	}
	if got := WordOverlap(nil, b); got != 0 {
		t.Errorf("WordOverlap(nil, b) = %d, want 0", got)
	}
}

func TestSplitSentences(t *testing.T) {
	text := "This is the first sentence of the text. Short. And here is another long sentence! Is this a question sentence too?"
	got := SplitSentences(text, 15)
	if len(got) != 3 {
		t.Fatalf("SplitSentences() returned %d sentences, want 3: %v", len(got), got)
	}
	if got[0] != "This is the first sentence of the text" {
		t.Errorf("first sentence = %q", got[0])
	}
}

func TestJoinSentences(t *testing.T) {
	if got := JoinSentences(nil); got != "" {
		t.Errorf("JoinSentences(nil) = %q, want empty", got)
	}
	got := JoinSentences([]string{"one thing", "another thing"})
	if got != "one thing. another thing." {
		t.Errorf("JoinSentences() = %q", got)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Machine Learning", "machine-learning"},
		{"  Business & Strategy ", "business-&-strategy"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizedPrefix(t *testing.T) {
	long := "The  QUICK   brown fox jumps over the lazy dog repeatedly and then some"
	got := NormalizedPrefix(long, 20)
	if got != "the quick brown fox " {
		t.Errorf("NormalizedPrefix() = %q", got)
	}
	if NormalizedPrefix("short", 80) != "short" {
		t.Error("short input should pass through")
	}
}
