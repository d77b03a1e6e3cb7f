// Package guidance maps a free-text feeling to Islamic guidance material
// via an OpenAI-compatible chat-completion API and enriches the reply with
// derived ayah audio URLs.
package guidance

// Quote is a quoted passage in the guidance payload. For Qur'an quotes Ref
// holds a citation like "Q 94:5-6" and Audio carries the derived recording
// URLs; hadith quotes reuse the shape with a collection reference in Ref.
type Quote struct {
	Ar  string `json:"ar,omitempty"`
	En  string `json:"en"`
	Ref string `json:"ref,omitempty"`
	// omitzero: attached as an array (possibly empty) whenever enrichment
	// ran, absent when the quote had no citation.
	Audio []string `json:"audio,omitzero"`
}

// Counsel is a short piece of scholarly advice.
type Counsel struct {
	By   string `json:"by"`
	Text string `json:"text"`
	Ref  string `json:"ref,omitempty"`
}

// Mapped groups the per-feeling guidance material the model produces.
type Mapped struct {
	Feeling string  `json:"feeling"`
	Quran   Quote   `json:"quran"`
	Quran2  *Quote  `json:"quran2,omitempty"`
	Hadith  Quote   `json:"hadith"`
	Counsel Counsel `json:"counsel"`
	Dua     string  `json:"dua"`
}

// Response is the model-produced guidance payload returned to clients.
type Response struct {
	Mapped      Mapped   `json:"mapped"`
	Peptalk     string   `json:"peptalk"`
	Suggestions []string `json:"suggestions,omitempty"`
}
