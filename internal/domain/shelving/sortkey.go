package shelving

import (
	"cmp"
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/phrazzld/kdc-shelver/internal/domain"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// VolKind ranks the kind of volume/copy designator on a call number.
type VolKind int

// Designator kinds in shelving order.
const (
	VolKindNone   VolKind = 0
	VolKindVolume VolKind = 1
	VolKindCopy   VolKind = 2
)

// String returns the designator prefix for the kind.
func (k VolKind) String() string {
	switch k {
	case VolKindVolume:
		return "v."
	case VolKindCopy:
		return "c."
	default:
		return "none"
	}
}

// SortKey is the shelving key of a call number. Field order is comparison
// order and must stay in step with Fields.
type SortKey struct {
	Class     float64
	Hangul    string
	AuthorNum int
	WorkMark  string
	VolKind   VolKind
	VolNum    int
}

var (
	classPrefix   = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?`)
	authorPattern = regexp.MustCompile(`^([ㄱ-ㅎㅏ-ㅣ가-힣]+)?(\d+)?(.*)$`)
	volPattern    = regexp.MustCompile(`(?i)v\.(\d+)`)
	copyPattern   = regexp.MustCompile(`(?i)c\.(\d+)`)
)

// DeriveSortKey extracts the shelving key of a call number.
//
// Every field is parsed tolerantly: text that cannot be read as the expected
// shape contributes a neutral component (0 or "") instead of an error, so
// the function is total over arbitrary input.
func DeriveSortKey(cn domain.CallNumber) SortKey {
	key := SortKey{Class: parseClass(cn.Class)}
	key.Hangul, key.AuthorNum, key.WorkMark = splitAuthor(cn.Author)
	key.VolKind, key.VolNum = parseVol(cn.Vol)
	return key
}

// Compare orders two keys lexicographically and returns -1, 0 or 1.
func (k SortKey) Compare(o SortKey) int {
	_, order := k.diff(o)
	return order
}

// diff walks the key positions in order and reports the index of the first
// differing position together with its order. Equal keys yield
// (noDifference, 0).
func (k SortKey) diff(o SortKey) (int, int) {
	if c := cmp.Compare(k.Class, o.Class); c != 0 {
		return fieldClass, c
	}
	if c := strings.Compare(k.Hangul, o.Hangul); c != 0 {
		return fieldHangul, c
	}
	if c := cmp.Compare(k.AuthorNum, o.AuthorNum); c != 0 {
		return fieldAuthorNum, c
	}
	if c := strings.Compare(k.WorkMark, o.WorkMark); c != 0 {
		return fieldWorkMark, c
	}
	if c := cmp.Compare(k.VolKind, o.VolKind); c != 0 {
		return fieldVolKind, c
	}
	if c := cmp.Compare(k.VolNum, o.VolNum); c != 0 {
		return fieldVolNum, c
	}
	return noDifference, 0
}

// normalizeText folds full-width forms to their narrow equivalents and
// composes decomposed Hangul, so labels typed with different input methods
// produce identical keys.
func normalizeText(s string) string {
	return norm.NFC.String(width.Fold.String(s))
}

// parseClass reads the classification as a decimal number.
//
// Parameters:
//   - s: The classification text, e.g. "813.6"
//
// Returns:
//   - The numeric value of the longest leading decimal literal, or 0 when
//     the text is empty or does not start with a number
//
// Comparison is by magnitude, so "530.49" sorts before "530.5" and
// "813.01" before "813.1". Trailing text after the number is ignored.
func parseClass(s string) float64 {
	s = strings.TrimLeftFunc(normalizeText(s), unicode.IsSpace)
	lit := classPrefix.FindString(s)
	if lit == "" {
		return 0
	}
	// Out-of-range literals come back as ±Inf, which still order correctly.
	v, _ := strconv.ParseFloat(lit, 64)
	if v == 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

// splitAuthor decomposes an author code into its Hangul run, cutter number
// and work mark.
//
// Parameters:
//   - author: The author code, e.g. "김294ㄱ"
//
// Returns:
//   - hangul: The leading run of Hangul syllables or jamo, "" if absent
//   - num: The digit run that follows, 0 if absent
//   - mark: The trimmed remainder (the work mark)
//
// The Hangul run is compared by code point. Unicode lays out precomposed
// syllables by initial consonant, then vowel, then final consonant, so code
// point order already places "가" before "각" and "게" before "겨".
// Input the pattern cannot decompose (text spanning a line break) is kept
// whole in the Hangul position.
func splitAuthor(author string) (hangul string, num int, mark string) {
	author = normalizeText(author)
	if author == "" {
		return "", 0, ""
	}

	m := authorPattern.FindStringSubmatch(author)
	if m == nil {
		return author, 0, ""
	}
	return m[1], parseDigits(m[2]), strings.TrimSpace(m[3])
}

// parseVol classifies the volume/copy designator. A "v.N" anywhere in the
// text wins over "c.N"; text with neither maps to (VolKindNone, 0) no
// matter what it says.
func parseVol(vol string) (VolKind, int) {
	vol = normalizeText(vol)
	if m := volPattern.FindStringSubmatch(vol); m != nil {
		return VolKindVolume, parseDigits(m[1])
	}
	if m := copyPattern.FindStringSubmatch(vol); m != nil {
		return VolKindCopy, parseDigits(m[1])
	}
	return VolKindNone, 0
}

// parseDigits converts an ASCII digit run to an int. Runs too long for an
// int saturate at math.MaxInt; an empty run is 0.
func parseDigits(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return math.MaxInt
		}
		return 0
	}
	return n
}
