package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Replacement is one literal substitution of a replacement table.
type Replacement struct {
	From string
	To   string
}

// ReplacementTable is an ordered list of literal substitutions.
// Order matters: entries are applied one after the other over the whole text.
type ReplacementTable []Replacement

// Apply runs every substitution of the table in order.
func (t ReplacementTable) Apply(s string) string {
	for _, r := range t {
		if r.From == "" {
			continue
		}
		s = strings.ReplaceAll(s, r.From, r.To)
	}
	return s
}

// mojibakeTargets lists the characters the repair table restores, in the
// order their mis-decoded spelling is replaced. The cedilla s maps to the
// comma-below form used in Romanian.
var mojibakeTargets = []struct {
	char rune
	to   string
}{
	{'î', "î"}, {'â', "â"}, {'ă', "ă"}, {'ş', "ș"}, {'ţ', "ț"}, {'ț', "ț"},
	{'Â', "Â"}, {'Î', "Î"}, {'Ă', "Ă"}, {'Ș', "Ș"}, {'Ț', "Ț"},
	{'ș', "ș"}, {'Ş', "Ș"}, {'Ţ', "Ț"},
	{'Í', "Í"},
	{'á', "á"}, {'é', "é"}, {'ó', "ó"}, {'ý', "ý"},
	{'Á', "Á"}, {'É', "É"}, {'Ó', "Ó"}, {'Ý', "Ý"},
	{'ê', "ê"}, {'ô', "ô"}, {'û', "û"},
	{'Ê', "Ê"}, {'Ô', "Ô"}, {'Û', "Û"},
	{'ã', "ã"}, {'ñ', "ñ"}, {'õ', "õ"},
	{'Ã', "Ã"}, {'Ñ', "Ñ"}, {'Õ', "Õ"},
	{'ä', "ä"}, {'ë', "ë"}, {'ï', "ï"}, {'ö', "ö"}, {'ü', "ü"}, {'ÿ', "ÿ"},
	{'Ä', "Ä"}, {'Ë', "Ë"}, {'Ï', "Ï"}, {'Ö', "Ö"}, {'Ü', "Ü"}, {'Ÿ', "Ÿ"},
}

// Mojibake returns how the UTF-8 encoding of r reads when decoded as
// Windows-1252, e.g. 'î' -> "Ã®". The bytes Windows-1252 leaves undefined
// (0x81, 0x8D, 0x8F, 0x90, 0x9D) read as the C1 control of the same value,
// as lenient decoders produce them.
func Mojibake(r rune) string {
	buf := make([]byte, utf8.RuneLen(r))
	utf8.EncodeRune(buf, r)

	var b strings.Builder
	for _, c := range buf {
		decoded := charmap.Windows1252.DecodeByte(c)
		if decoded == utf8.RuneError {
			decoded = rune(c)
		}
		b.WriteRune(decoded)
	}
	return b.String()
}

// RepairTable returns the substitutions that undo UTF-8 text mis-decoded as
// Windows-1252. Sequences not in the table pass through unchanged.
func RepairTable() ReplacementTable {
	table := make(ReplacementTable, 0, len(mojibakeTargets))
	for _, t := range mojibakeTargets {
		table = append(table, Replacement{From: Mojibake(t.char), To: t.to})
	}
	return table
}

// StripTable returns the substitutions reducing Romanian diacritics to their
// base Latin letter. Both the comma-below and the legacy cedilla forms of
// s and t are covered.
func StripTable() ReplacementTable {
	return ReplacementTable{
		{"ă", "a"}, {"â", "a"}, {"î", "i"}, {"ș", "s"}, {"ț", "t"},
		{"ş", "s"}, {"ţ", "t"},
		{"Ă", "A"}, {"Â", "A"}, {"Î", "I"}, {"Ș", "S"}, {"Ț", "T"},
		{"Ş", "S"}, {"Ţ", "T"},
	}
}

// headFieldDisallowed holds the characters removed from title and
// description before they reach the document head and heading.
const headFieldDisallowed = "\":'`"

// CleanHeadField removes double quotes, colons, single quotes and backticks.
func CleanHeadField(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(headFieldDisallowed, r) {
			return -1
		}
		return r
	}, s)
}
