package sortable

import "github.com/amp-labs/amp-containers/compare"

// String orders strings byte-wise and case-sensitively.
type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}

func (s String) Compare(other String) int {
	return threeWay(s < other, s > other)
}

// Text orders strings byte-wise with ASCII letters folded, so "Apple" and
// "apple" are equal. It is the wrapper form of compare.Text with
// compare.CaseInsensitive.
type Text string

var _ Sortable[Text] = (*Text)(nil)

var foldText = compare.Text(compare.CaseInsensitive()) //nolint:gochecknoglobals

func (s Text) Equals(other Text) bool {
	return foldText(string(s), string(other)) == 0
}

func (s Text) LessThan(other Text) bool {
	return foldText(string(s), string(other)) < 0
}

func (s Text) Compare(other Text) int {
	return foldText(string(s), string(other))
}
