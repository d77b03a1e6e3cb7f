package quran

import (
	"reflect"
	"testing"
)

func TestParseCitation(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Verse
	}{
		{
			name:  "single ayah short marker",
			input: "Q 2:286",
			want:  []Verse{{2, 286}},
		},
		{
			name:  "range with hyphen",
			input: "Q 94:5-6",
			want:  []Verse{{94, 5}, {94, 6}},
		},
		{
			name:  "range with en-dash",
			input: "Q 94:5–6",
			want:  []Verse{{94, 5}, {94, 6}},
		},
		{
			name:  "long marker with apostrophe",
			input: "Qur'an 2:286",
			want:  []Verse{{2, 286}},
		},
		{
			name:  "long marker without apostrophe",
			input: "Quran 39:53",
			want:  []Verse{{39, 53}},
		},
		{
			name:  "lowercase marker",
			input: "quran 39:53",
			want:  []Verse{{39, 53}},
		},
		{
			name:  "no space after marker",
			input: "Q2:255",
			want:  []Verse{{2, 255}},
		},
		{
			name:  "whitespace around colon",
			input: "Q 94 : 5",
			want:  []Verse{{94, 5}},
		},
		{
			name:  "whitespace around dash",
			input: "Q 94:5 - 6",
			want:  []Verse{{94, 5}, {94, 6}},
		},
		{
			name:  "wider range",
			input: "Q 93:3-8",
			want:  []Verse{{93, 3}, {93, 4}, {93, 5}, {93, 6}, {93, 7}, {93, 8}},
		},
		{
			name:  "surah out of mushaf range accepted",
			input: "Q 999:1",
			want:  []Verse{{999, 1}},
		},
		{
			name:  "trailing prose ignored",
			input: "Q 94:5-6 (Ash-Sharh)",
			want:  []Verse{{94, 5}, {94, 6}},
		},
		{
			name:  "inverted range yields nothing",
			input: "Q 4:12-9",
			want:  []Verse{},
		},
		{
			name:  "equal range bounds yield one verse",
			input: "Q 4:12-12",
			want:  []Verse{{4, 12}},
		},
		{
			name:  "hadith reference does not match",
			input: "Bukhari 6114",
			want:  []Verse{},
		},
		{
			name:  "empty string",
			input: "",
			want:  []Verse{},
		},
		{
			name:  "prose without citation",
			input: "be patient and grateful",
			want:  []Verse{},
		},
		{
			name:  "marker without numbers",
			input: "Quran",
			want:  []Verse{},
		},
		{
			name:  "chapter without verse",
			input: "Q 94",
			want:  []Verse{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseCitation(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseCitation(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCitationIsPure(t *testing.T) {
	input := "Q 94:5–6"
	first := ParseCitation(input)
	second := ParseCitation(input)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parses differ: %v vs %v", first, second)
	}
}

func TestVerseString(t *testing.T) {
	v := Verse{Surah: 94, Ayah: 5}
	if got := v.String(); got != "94:5" {
		t.Errorf("Verse.String() = %q, want %q", got, "94:5")
	}
}
