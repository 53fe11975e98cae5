package termtext

import (
	"slices"
	"strings"
	"testing"
)

func clusterStrings(clusters []Cluster) []string {
	out := make([]string, len(clusters))
	for i, c := range clusters {
		out[i] = c.String()
	}
	return out
}

func TestSplitClusters(t *testing.T) {
	tests := []struct {
		s    string
		want []string
	}{
		{"abc", []string{"a", "b", "c"}},
		{"日本", []string{"日", "本"}},
		{"áb", []string{"á", "b"}},
		{"a\nb", []string{"a\n", "b"}},
		{"a\u0301\tb", []string{"a\u0301\t", "b"}},
		{"\ta", []string{"\t", "a"}},
		{"a\u200Db", []string{"a\u200Db"}},
		{"\t\t", []string{"\t", "\t"}},
		{"", []string{}},
	}

	r := newTestRuler()
	for _, tt := range tests {
		got := clusterStrings(r.SplitClusters(tt.s))
		if !slices.Equal(got, tt.want) {
			t.Errorf("SplitClusters(%q) = %q, want %q", tt.s, got, tt.want)
		}
	}
}

func TestClustersCoverText(t *testing.T) {
	texts := []string{
		"Hello, 世界!",
		"\U0001F468\u200D\U0001F469\u200D\U0001F467 family",
		"e\u0301te\u0301",
		"tab\there\r\n",
		"\u200D\u200D",
	}

	for _, width := range []TextWidth{CellWidth{}, RuneWidth{}, GraphemeWidth{}} {
		r := newTestRuler(WithWidth(width))
		for _, text := range texts {
			var sb strings.Builder
			for c := range r.Clusters(text) {
				if c.Len() == 0 {
					t.Fatalf("%T: empty cluster in %q", width, text)
				}
				sb.WriteString(c.String())
			}
			if sb.String() != text {
				t.Errorf("%T: clusters of %q concatenate to %q", width, text, sb.String())
			}
		}
	}
}

func TestClustersStopEarly(t *testing.T) {
	r := newTestRuler()

	count := 0
	for range r.Clusters("abcdef") {
		count++
		if count == 3 {
			break
		}
	}
	if count != 3 {
		t.Errorf("consumed %d clusters, want 3", count)
	}
}

func TestClusterCodePoints(t *testing.T) {
	c := Cluster{'a', ZeroWidthJoiner, 'b'}
	cps := c.CodePoints()
	cps[0] = 'z'

	if c[0] != 'a' {
		t.Error("CodePoints() should return a copy")
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}
