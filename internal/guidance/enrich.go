package guidance

import "github.com/sakinah-app/sakinah/internal/quran"

// Enrich attaches derived ayah audio URLs to the Qur'an quotes in resp.
// A quote with no citation is left untouched; an unparseable citation gets
// an empty list. Enrichment never fails.
func Enrich(resp *Response) {
	enrichQuote(&resp.Mapped.Quran)
	if resp.Mapped.Quran2 != nil {
		enrichQuote(resp.Mapped.Quran2)
	}
}

func enrichQuote(q *Quote) {
	if q.Ref == "" {
		return
	}
	q.Audio = quran.AudioURLs(quran.ParseCitation(q.Ref))
}
