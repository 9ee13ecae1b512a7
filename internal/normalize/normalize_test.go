package normalize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "plain text unchanged",
			input: "What is photosynthesis?",
			want:  "What is photosynthesis?",
		},
		{
			name:  "strips markup tags",
			input: "<p>What is <b>gravity</b>?</p>",
			want:  "What is gravity ?",
		},
		{
			name:  "decodes entities",
			input: "Tom &amp; Jerry say &quot;hi&quot;",
			want:  `Tom & Jerry say "hi"`,
		},
		{
			name:  "decodes nbsp and apostrophe",
			input: "it&#39;s&nbsp;here",
			want:  "it's here",
		},
		{
			name:  "collapses whitespace runs",
			input: "a\t\tb\n\nc   d",
			want:  "a b c d",
		},
		{
			name:  "trims",
			input: "   padded   ",
			want:  "padded",
		},
		{
			name:  "strips leading page boilerplate",
			input: "Page 3 of 12 What is an atom?",
			want:  "What is an atom?",
		},
		{
			name:  "strips leading chapter heading",
			input: "Chapter 4: What is an ion?",
			want:  "What is an ion?",
		},
		{
			name:  "strips trailing page footer",
			input: "What is an atom? Page 3 of 12",
			want:  "What is an atom?",
		},
		{
			name:  "strips trailing copyright",
			input: "Define osmosis. Copyright 2024 Acme Press",
			want:  "Define osmosis.",
		},
		{
			name:  "strips question number with Q prefix",
			input: "Q1: What is water made of?",
			want:  "What is water made of?",
		},
		{
			name:  "strips question number with word prefix",
			input: "Question 2: Name the capital of Kenya.",
			want:  "Name the capital of Kenya.",
		},
		{
			name:  "strips bare numeric question marker",
			input: "3. Define inertia.",
			want:  "Define inertia.",
		},
		{
			name:  "markup only collapses to empty",
			input: "<div><span></span></div>",
			want:  "",
		},
		{
			name:  "unclosed tag treated as literal",
			input: "is 3 < 5 true?",
			want:  "is 3 < 5 true?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Text(tt.input)
			if got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestText_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"What is photosynthesis?",
		"<p>What   is\tgravity?</p>",
		"Q1: Page 2 of 9 What is an atom? Page 2 of 9",
		"Tom &amp; Jerry",
		"  3.   Define   inertia.  ",
	}
	for _, input := range inputs {
		once := Text(input)
		twice := Text(once)
		if once != twice {
			t.Errorf("Text not idempotent for %q: first %q, second %q", input, once, twice)
		}
	}
}

func TestContent(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercases and strips punctuation",
			input: "What is the Capital of France?!",
			want:  "what is the capital of france",
		},
		{
			name:  "formatting variants collapse to same form",
			input: "  WHAT   is the capital, of France? ",
			want:  "what is the capital of france",
		},
		{
			name:  "empty",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Content(tt.input)
			if got != tt.want {
				t.Errorf("Content(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOptionBody(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "collapses internal whitespace", input: "the  mitochondria\n powerhouse", want: "the mitochondria powerhouse"},
		{name: "strips dash bullet", input: "- kinetic energy", want: "kinetic energy"},
		{name: "strips dot bullet", input: "• potential energy", want: "potential energy"},
		{name: "strips single bullet only", input: "- - double", want: "- double"},
		{name: "plain body unchanged", input: "4", want: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := OptionBody(tt.input)
			if got != tt.want {
				t.Errorf("OptionBody(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPDF(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty",
			input: "",
			want:  "",
		},
		{
			name:  "form feed becomes newline",
			input: "first\fsecond",
			want:  "first\nsecond",
		},
		{
			name:  "control characters removed",
			input: "wa\x00te\x08r",
			want:  "water",
		},
		{
			name:  "hyphen wrap repaired",
			input: "photosyn-\nthesis makes sugar",
			want:  "photosynthesis makes sugar",
		},
		{
			name:  "standalone page number line removed",
			input: "the question\n42\nthe options",
			want:  "the question\nthe options",
		},
		{
			name:  "chapter header line removed",
			input: "Chapter 3 Energy and Work\nWhat is a joule?",
			want:  "What is a joule?",
		},
		{
			name:  "newline runs collapsed to two",
			input: "stem\n\n\n\n\noptions",
			want:  "stem\n\noptions",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PDF(tt.input)
			if got != tt.want {
				t.Errorf("PDF(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
