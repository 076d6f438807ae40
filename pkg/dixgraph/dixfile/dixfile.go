// Package dixfile implements the file codecs of spec.md §6 and the
// edge-building step (component D) that turns parsed bilingual word
// pairs into the edge records the translation graph is built from.
package dixfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/unicode"

	"github.com/dkbrz/dixgraph/pkg/dixgraph/word"
)

// MonodixEntry is one line of an artificial monolingual dictionary
// file: a lemma plus the tag-variant groups unified for it.
type MonodixEntry struct {
	Lemma  string
	Groups []word.TagGroup
}

// monodixDecoder wraps the UTF-16 transform the original tool used for
// monodix files (accented lemmas need a lossless 16-bit codec).
func monodixDecoder(r io.Reader) io.Reader {
	return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Reader(r)
}

func monodixEncoder(w io.Writer) io.Writer {
	return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().Writer(w)
}

// ReadMonodix parses a monodix file (lemma TAB group$group$...). Each
// group is a '-'-joined Tags, multiple comparable Tags within a group
// are '_'-joined.
func ReadMonodix(r io.Reader) ([]MonodixEntry, error) {
	scanner := bufio.NewScanner(monodixDecoder(r))
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var entries []MonodixEntry
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 2)
		if len(fields) != 2 {
			continue
		}
		entries = append(entries, MonodixEntry{
			Lemma:  fields[0],
			Groups: parseGroups(fields[1]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read monodix: %w", err)
	}
	return entries, nil
}

// WriteMonodix writes entries back out in the same UTF-16 wire format.
func WriteMonodix(w io.Writer, entries []MonodixEntry) error {
	enc := monodixEncoder(w)
	for _, e := range entries {
		line := e.Lemma + "\t" + groupsToString(e.Groups) + "\n"
		if _, err := io.WriteString(enc, line); err != nil {
			return fmt.Errorf("write monodix: %w", err)
		}
	}
	return nil
}

func parseGroups(field string) []word.TagGroup {
	var groups []word.TagGroup
	for _, part := range strings.Split(field, "$") {
		var group word.TagGroup
		for _, chain := range strings.Split(part, "_") {
			group = append(group, parseTags(chain))
		}
		groups = append(groups, group)
	}
	return groups
}

func parseTags(s string) word.Tags {
	if s == "" || s == "-" {
		return word.Tags{}
	}
	atoms := strings.Split(s, "-")
	out := make(word.Tags, 0, len(atoms))
	for _, a := range atoms {
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

func groupsToString(groups []word.TagGroup) string {
	parts := make([]string, len(groups))
	for i, g := range groups {
		chains := make([]string, len(g))
		for j, t := range g {
			chains[j] = t.String()
		}
		parts[i] = strings.Join(chains, "_")
	}
	return strings.Join(parts, "$")
}

// Side marks which direction a bilingual entry is valid for: BOTH
// directions, left-to-right only, or right-to-left only -- mirroring
// the 'r' attribute of a .dix entry.
type Side string

const (
	SideBoth Side = ""
	SideLR   Side = "LR"
	SideRL   Side = "RL"
)

// Edge is one preprocessed bilingual pair, the unit an edge-list file
// stores (spec §6): side plus the two fully-tagged canonical Words.
type Edge struct {
	Side  Side
	Word1 word.Word
	Word2 word.Word
}

// WriteEdgeList serializes edges in the wire format consumed by
// transgraph.Build: side, then each word as lang/lemma/tags-field.
func WriteEdgeList(w io.Writer, edges []Edge) error {
	bw := bufio.NewWriter(w)
	for _, e := range edges {
		line := string(e.Side) + "\t" + wordBiField(e.Word1) + "\t" + wordBiField(e.Word2) + "\n"
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write edge list: %w", err)
		}
	}
	return bw.Flush()
}

func wordBiField(w word.Word) string {
	return w.Lang + "\t" + w.Lemma + "\t" + groupsToString(w.Groups)
}

// ReadEdgeList parses the edge-list wire format back into Edges.
// Malformed lines are skipped, never fatal to the read as a whole
// (spec.md §7).
func ReadEdgeList(r io.Reader) ([]Edge, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var edges []Edge
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 7 {
			continue
		}
		w1 := word.New(fields[1], fields[2], parseGroups(fields[3]))
		w2 := word.New(fields[4], fields[5], parseGroups(fields[6]))
		edges = append(edges, Edge{Side: Side(fields[0]), Word1: w1, Word2: w2})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read edge list: %w", err)
	}
	return edges, nil
}

// StatsRow is one line of stats.csv: a language pair's dictionary
// size, split into unrestricted, LR-only and RL-only counts.
type StatsRow struct {
	Lang1, Lang2  string
	Both, LR, RL  int
}

// WriteStats writes the per-pair dictionary size counters consumed by
// langgraph's weight formula.
func WriteStats(w io.Writer, rows []StatsRow) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		line := fmt.Sprintf("%s\t%s\t%d\t%d\t%d\n", r.Lang1, r.Lang2, r.Both, r.LR, r.RL)
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}
	return bw.Flush()
}

// ReadStats parses stats.csv.
func ReadStats(r io.Reader) ([]StatsRow, error) {
	scanner := bufio.NewScanner(r)
	var rows []StatsRow
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 5 {
			continue
		}
		row := StatsRow{Lang1: fields[0], Lang2: fields[1]}
		if _, err := fmt.Sscanf(fields[2], "%d", &row.Both); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(fields[3], "%d", &row.LR); err != nil {
			continue
		}
		if _, err := fmt.Sscanf(fields[4], "%d", &row.RL); err != nil {
			continue
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stats: %w", err)
	}
	return rows, nil
}

// ConfigRow is one line of a recommendation file (spec §6
// `<L1>-<L2>-config`): a language worth including in the working
// translation graph, the length of the shortest path it was found on,
// and that path itself.
type ConfigRow struct {
	PathLen float64
	Lang    string
	Path    []string
}

// WriteConfig writes recommendation rows in file order (the caller is
// responsible for the ascending-by-length sort spec §6 requires; this
// package does not re-sort so callers can preserve langgraph.Recommend's
// deterministic tie-breaking).
func WriteConfig(w io.Writer, rows []ConfigRow) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		line := fmt.Sprintf("%g\t%s\t:\t%s\n", r.PathLen, r.Lang, strings.Join(r.Path, " "))
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
	}
	return bw.Flush()
}

// ReadConfig parses a recommendation file back into rows.
func ReadConfig(r io.Reader) ([]ConfigRow, error) {
	scanner := bufio.NewScanner(r)
	var rows []ConfigRow
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		fields := strings.SplitN(line, "\t", 4)
		if len(fields) != 4 {
			continue
		}
		var length float64
		if _, err := fmt.Sscanf(fields[0], "%g", &length); err != nil {
			continue
		}
		rows = append(rows, ConfigRow{
			PathLen: length,
			Lang:    fields[1],
			Path:    strings.Fields(fields[3]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return rows, nil
}

// PreviewRow is one proposed translation, scored on each side it was
// reached from (spec §6 preview file, §9 on the preserved LR/RL
// ambiguity in side selection).
type PreviewRow struct {
	Word1, Word2   word.Word
	ScoreLR, ScoreRL float64
}

// WritePreview writes rows in the human-review wire format: lemma TAB
// first-tag-variant pairs plus the two direction scores.
func WritePreview(w io.Writer, rows []PreviewRow) error {
	bw := bufio.NewWriter(w)
	for _, r := range rows {
		line := fmt.Sprintf("%s\t%s\t%s\t%s\t%g\t%g\n",
			r.Word1.Lemma, firstVariant(r.Word1), r.Word2.Lemma, firstVariant(r.Word2), r.ScoreLR, r.ScoreRL)
		if _, err := bw.WriteString(line); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
	}
	return bw.Flush()
}

func firstVariant(w word.Word) string {
	all := w.AllTags()
	if len(all) == 0 {
		return ""
	}
	return all[0].String()
}

// ReadPreview parses a preview file back into rows, for convert/merge.
// Malformed lines are skipped, never fatal to the read as a whole
// (spec.md §7).
func ReadPreview(r io.Reader, lang1, lang2 string) ([]PreviewRow, error) {
	scanner := bufio.NewScanner(r)
	var rows []PreviewRow
	for scanner.Scan() {
		fields := strings.Split(scanner.Text(), "\t")
		if len(fields) != 6 {
			continue
		}
		var scoreLR, scoreRL float64
		fmt.Sscanf(fields[4], "%g", &scoreLR)
		fmt.Sscanf(fields[5], "%g", &scoreRL)
		rows = append(rows, PreviewRow{
			Word1:   word.New(lang1, fields[0], []word.TagGroup{{parseTags(fields[1])}}),
			Word2:   word.New(lang2, fields[2], []word.TagGroup{{parseTags(fields[3])}}),
			ScoreLR: scoreLR,
			ScoreRL: scoreRL,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read preview: %w", err)
	}
	return rows, nil
}
