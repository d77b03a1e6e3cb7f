package quran

import "fmt"

// audioBase is the everyayah.com recording set every audio URL points at:
// Mahmoud Khalil al-Husary, 128kbps. Files are keyed by a six-digit
// surah+ayah code.
const audioBase = "https://www.everyayah.com/data/Husary_128kbps/"

// AudioURL returns the recording URL for a single verse. Surah and ayah are
// zero-padded to three digits each; values past 999 render wider and simply
// point at files that do not exist.
func AudioURL(v Verse) string {
	return fmt.Sprintf("%s%03d%03d.mp3", audioBase, v.Surah, v.Ayah)
}

// AudioURLs maps verses to recording URLs, one per verse, preserving order.
func AudioURLs(verses []Verse) []string {
	urls := make([]string, 0, len(verses))
	for _, v := range verses {
		urls = append(urls, AudioURL(v))
	}
	return urls
}
