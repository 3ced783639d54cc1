package daybook

import "testing"

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "accents and punctuation stripped",
			text: "Héllo, World!",
			want: "hello-world",
		},
		{
			name: "already a slug",
			text: "hello-world",
			want: "hello-world",
		},
		{
			name: "whitespace runs collapse",
			text: "a  lot   of space",
			want: "a-lot-of-space",
		},
		{
			name: "hyphen and whitespace runs collapse together",
			text: "a - b -- c",
			want: "a-b-c",
		},
		{
			name: "underscores are word characters",
			text: "foo_bar baz",
			want: "foo_bar-baz",
		},
		{
			name: "surrounding whitespace trimmed",
			text: "  Trimmed  ",
			want: "trimmed",
		},
		{
			name: "compatibility decomposition of fullwidth letters",
			text: "ＡＢＣ",
			want: "abc",
		},
		{
			name: "tag symbols dropped",
			text: "Called @Bob about #project-x.",
			want: "called-bob-about-project-x",
		},
		{
			name: "empty input",
			text: "",
			want: "",
		},
		{
			name: "punctuation only",
			text: "!!!...???",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Slugify(tt.text)

			if got != tt.want {
				t.Errorf("Slugify(%q) = %q, want %q", tt.text, got, tt.want)
			}
			if again := Slugify(got); again != got {
				t.Errorf("Slugify is not idempotent: Slugify(%q) = %q", got, again)
			}
		})
	}
}
