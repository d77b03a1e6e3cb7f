// Package quran resolves short Qur'an citation strings such as "Q 94:5-6"
// into verse coordinates and per-ayah recording URLs.
package quran

import (
	"fmt"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Verse identifies a single ayah by surah and ayah number.
type Verse struct {
	Surah int
	Ayah  int
}

// String returns the verse in surah:ayah form.
func (v Verse) String() string {
	return fmt.Sprintf("%d:%d", v.Surah, v.Ayah)
}

// citation is the grammar for a Qur'an citation: a chapter marker ("Q",
// "Quran" or "Qur'an", any case), a surah number, a colon, a start ayah,
// and an optional dash-introduced end ayah.
type citation struct {
	Surah int  `parser:"Marker @Number"`
	Start int  `parser:"Colon @Number"`
	End   *int `parser:"( Dash @Number )?"`
}

// citationLexer tokenizes citation strings. Words that are not part of the
// citation lex as Word and are elided, so a citation is recognized inside
// surrounding prose. Dash covers the plain hyphen and the en/em dashes
// commonly produced by model output.
var citationLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Marker", Pattern: `(?i)q(?:ur'?an)?`},
	{Name: "Number", Pattern: `\d+`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Dash", Pattern: `[-–—]`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Word", Pattern: `\S+`},
})

var citationParser = participle.MustBuild[citation](
	participle.Lexer(citationLexer),
	participle.Elide("Whitespace", "Word"),
)

// ParseCitation extracts a Qur'an citation from ref and expands it to the
// ordered list of verses it covers, start through end ayah inclusive.
// Supported forms:
//   - "Q 94:5" (single ayah)
//   - "Q 94:5-6" or "Q 94:5–6" (ayah range, hyphen or en-dash)
//   - "Qur'an 2:286", "Quran 39:53" (long marker, optional apostrophe)
//
// A missing or unrecognized citation yields an empty list, never an error.
// An inverted range ("Q 4:12-9") covers no verses and also yields an empty
// list. Surah and ayah numbers are not checked against real mushaf bounds.
func ParseCitation(ref string) []Verse {
	verses := []Verse{}
	if ref == "" {
		return verses
	}

	cit, err := citationParser.ParseString("", ref, participle.AllowTrailing(true))
	if err != nil {
		return verses
	}

	end := cit.Start
	if cit.End != nil {
		end = *cit.End
	}
	for ayah := cit.Start; ayah <= end; ayah++ {
		verses = append(verses, Verse{Surah: cit.Surah, Ayah: ayah})
	}
	return verses
}
