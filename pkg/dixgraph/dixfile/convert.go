package dixfile

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// dixSense is the <s n="..."/> tag marker inside an entry.
type dixSense struct {
	XMLName xml.Name `xml:"s"`
	N       string   `xml:"n,attr"`
}

type dixSide struct {
	XMLName xml.Name   `xml:"l"`
	Text    string     `xml:",chardata"`
	Senses  []dixSense `xml:"s"`
}

type dixEntry struct {
	XMLName  xml.Name `xml:"e"`
	Restrict string   `xml:"r,attr,omitempty"`
	VL       string   `xml:"vl,attr,omitempty"`
	VR       string   `xml:"vr,attr,omitempty"`
	Pair     dixPair  `xml:"p"`
}

type dixPair struct {
	XMLName xml.Name `xml:"p"`
	Left    dixSide  `xml:"l"`
	Right   dixSide  `xml:"r"`
}

type dixSection struct {
	XMLName xml.Name   `xml:"section"`
	Entries []dixEntry `xml:"e"`
}

func toSide(w word.Word) dixSide {
	variant := firstVariant(w)
	side := dixSide{Text: w.Lemma}
	if variant != "" {
		for _, atom := range splitAtoms(variant) {
			side.Senses = append(side.Senses, dixSense{N: atom})
		}
	}
	return side
}

func splitAtoms(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == '-' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// ConvertPreview is the supplemented convert-to-dix operation: it
// turns already-scored preview rows into a <section> of bilingual
// entries, picking the side marker from whichever direction the row
// was proposed on (spec §9 preserves the original ambiguity in that
// choice rather than resolving it).
//
// This intentionally only ever emits XML from PreviewRow values this
// package itself produced; it is not a general .dix reader/writer.
func ConvertPreview(w io.Writer, rows []PreviewRow) error {
	section := dixSection{}
	for _, r := range rows {
		entry := dixEntry{
			Pair: dixPair{Left: toSide(r.Word1), Right: toSide(r.Word2)},
		}
		switch {
		case r.ScoreLR > 0 && r.ScoreRL == 0:
			entry.Restrict = string(SideLR)
		case r.ScoreRL > 0 && r.ScoreLR == 0:
			entry.Restrict = string(SideRL)
		}
		section.Entries = append(section.Entries, entry)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("convert preview: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(section); err != nil {
		return fmt.Errorf("convert preview: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// DialectFragment is one converted section destined to be folded into
// a merged, dialect-tagged dictionary: its own language/dialect codes
// plus the XML section text ConvertPreview produced for it.
type DialectFragment struct {
	Lang1, Lang2 string
	Section      string
}

// MergeDialects folds several dialect-specific fragments into one
// output stream, tagging every entry with vl/vr attributes naming the
// dialect pair it came from -- mirroring the original tool's dialect
// merge step, generalized from a fixed two-language pairing to any
// number of fragments.
func MergeDialects(w io.Writer, fragments []DialectFragment) error {
	for _, f := range fragments {
		tagged, err := tagDialect(f.Section, f.Lang1, f.Lang2)
		if err != nil {
			return fmt.Errorf("merge dialects: %w", err)
		}
		if _, err := io.WriteString(w, tagged+"\n\n"); err != nil {
			return fmt.Errorf("merge dialects: %w", err)
		}
	}
	return nil
}

func tagDialect(section, vl, vr string) (string, error) {
	tagged := strings.ReplaceAll(section, "<e ", fmt.Sprintf("<e vl=%q vr=%q ", vl, vr))
	tagged = strings.ReplaceAll(tagged, "<e>", fmt.Sprintf("<e vl=%q vr=%q>", vl, vr))
	return tagged, nil
}
