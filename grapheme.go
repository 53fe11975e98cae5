package termtext

import (
	"iter"
	"strings"
)

// Cluster is a non-empty run of code points that renders at one stable width.
type Cluster []CodePoint

// String concatenates the cluster's code points.
func (c Cluster) String() string {
	var sb strings.Builder
	for _, cp := range c {
		sb.WriteRune(rune(cp))
	}
	return sb.String()
}

// CodePoints returns a copy of the cluster's code points.
func (c Cluster) CodePoints() []CodePoint {
	return append([]CodePoint(nil), c...)
}

// Len returns the number of code points in the cluster.
func (c Cluster) Len() int {
	return len(c)
}

// Clusters lazily groups the code points of text into clusters.
//
// A cluster grows while each following code point leaves its measured width
// unchanged. A zero width joiner and the code point right after it always join.
// A control character starting a cluster is a cluster of its own; after the
// first code point, controls join like any other zero-width code point, so
// "á\tb" splits into "á\t" and "b". The sequence can be consumed
// again by ranging over it a second time; it never resumes mid-stream.
func (r *Ruler) Clusters(text string) iter.Seq[Cluster] {
	return func(yield func(Cluster) bool) {
		rest := []rune(text)
		for len(rest) > 0 {
			n := r.nextCluster(rest)
			cluster := make(Cluster, n)
			for i, cp := range rest[:n] {
				cluster[i] = CodePoint(cp)
			}
			if !yield(cluster) {
				return
			}
			rest = rest[n:]
		}
	}
}

// SplitClusters is Clusters collected into a slice.
func (r *Ruler) SplitClusters(text string) []Cluster {
	var clusters []Cluster
	for c := range r.Clusters(text) {
		clusters = append(clusters, c)
	}
	return clusters
}

// nextCluster returns how many leading code points of runes form the first cluster.
func (r *Ruler) nextCluster(runes []rune) int {
	if CodePoint(runes[0]).IsControl() {
		return 1
	}

	var scratch strings.Builder
	scratch.WriteRune(runes[0])
	width := r.width.Width(scratch.String())
	joined := false

	n := 1
	for ; n < len(runes); n++ {
		cp := CodePoint(runes[n])
		scratch.WriteRune(runes[n])
		measured := r.width.Width(scratch.String())

		switch {
		case cp.IsZeroWidthJoiner():
			joined = true
		case joined:
			joined = false
		case measured != width:
			return n
		}
		width = measured
	}
	return n
}
