package ml

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
)

const (
	minSplit  = 2
	tolerance = 1e-12
)

// DecisionTree is a CART classifier splitting on gini impurity.
type DecisionTree struct {
	maxDepth   int
	seed       int64
	root       *node
	features   int
	importance []float64
}

type node struct {
	leaf      bool
	class     int
	feature   int
	threshold float64
	left      *node
	right     *node
}

// NewDecisionTree creates a tree bounded to the given depth.
// A depth of 0 grows the tree until the leaves are pure.
func NewDecisionTree(maxDepth int, seed int64) *DecisionTree {
	return &DecisionTree{
		maxDepth: maxDepth,
		seed:     seed,
	}
}

// builder holds the state of one Fit call.
type builder struct {
	x          [][]float64
	y          []int
	classes    int
	total      float64
	maxDepth   int
	rnd        *rand.Rand
	importance []float64
	labels     []int
}

// Fit grows the tree on the given samples.
func (t *DecisionTree) Fit(x [][]float64, y []int) error {
	features, err := check(x, y)
	if err != nil {
		return err
	}

	// map labels onto dense class indexes
	labels := make([]int, 0)
	index := make(map[int]int)
	for _, l := range y {
		if _, ok := index[l]; !ok {
			index[l] = 0
			labels = append(labels, l)
		}
	}
	sort.Ints(labels)
	for i, l := range labels {
		index[l] = i
	}
	classes := make([]int, len(y))
	for i, l := range y {
		classes[i] = index[l]
	}

	b := &builder{
		x:          x,
		y:          classes,
		classes:    len(labels),
		total:      float64(len(y)),
		maxDepth:   t.maxDepth,
		rnd:        rand.New(rand.NewSource(uint64(t.seed))),
		importance: make([]float64, features),
		labels:     labels,
	}

	samples := make([]int, len(y))
	for i := range samples {
		samples[i] = i
	}

	t.features = features
	t.root = b.grow(samples, 0)
	t.importance = normalise(b.importance)
	return nil
}

// Predict returns the class of each sample.
func (t *DecisionTree) Predict(x [][]float64) ([]int, error) {
	if t.root == nil {
		return nil, fmt.Errorf("tree is not trained")
	}
	y := make([]int, len(x))
	for i, row := range x {
		if len(row) != t.features {
			return nil, fmt.Errorf("row %d has %d features instead of %d: %w", i, len(row), t.features, ErrShapeMismatch)
		}
		n := t.root
		for !n.leaf {
			if row[n.feature] <= n.threshold {
				n = n.left
			} else {
				n = n.right
			}
		}
		y[i] = n.class
	}
	return y, nil
}

// Importance returns the normalised impurity decrease per feature.
func (t *DecisionTree) Importance() []float64 {
	importance := make([]float64, len(t.importance))
	copy(importance, t.importance)
	return importance
}

// Depth returns the depth of the trained tree.
func (t *DecisionTree) Depth() int {
	return depth(t.root)
}

func depth(n *node) int {
	if n == nil || n.leaf {
		return 0
	}
	l, r := depth(n.left), depth(n.right)
	if l > r {
		return l + 1
	}
	return r + 1
}

type split struct {
	ok        bool
	feature   int
	threshold float64
	impurity  float64
	left      float64
	right     float64
	nLeft     int
}

func (b *builder) grow(samples []int, level int) *node {
	counts := make([]int, b.classes)
	for _, s := range samples {
		counts[b.y[s]]++
	}
	n := len(samples)
	impurity := gini(counts, n)
	leaf := &node{
		leaf:  true,
		class: b.labels[majority(counts)],
	}

	if impurity == 0 || n < minSplit || (b.maxDepth > 0 && level >= b.maxDepth) {
		return leaf
	}

	best := b.split(samples, counts)
	if !best.ok || best.impurity > impurity+tolerance {
		return leaf
	}

	left := make([]int, 0, best.nLeft)
	right := make([]int, 0, n-best.nLeft)
	for _, s := range samples {
		if b.x[s][best.feature] <= best.threshold {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}

	nl, nr := float64(len(left)), float64(len(right))
	if gain := (float64(n)*impurity - nl*best.left - nr*best.right) / b.total; gain > 0 {
		b.importance[best.feature] += gain
	}

	return &node{
		feature:   best.feature,
		threshold: best.threshold,
		left:      b.grow(left, level+1),
		right:     b.grow(right, level+1),
	}
}

// split finds the threshold with the lowest weighted child impurity.
// Features are visited in a seeded random order and only a strictly better split replaces the current one.
func (b *builder) split(samples []int, counts []int) split {
	n := len(samples)
	best := split{impurity: math.Inf(1)}

	sorted := make([]int, n)
	for _, f := range b.rnd.Perm(len(b.importance)) {
		copy(sorted, samples)
		sort.SliceStable(sorted, func(i, j int) bool {
			return b.x[sorted[i]][f] < b.x[sorted[j]][f]
		})

		left := make([]int, b.classes)
		right := make([]int, b.classes)
		copy(right, counts)
		var sqLeft, sqRight float64
		for _, c := range counts {
			sqRight += float64(c) * float64(c)
		}

		for i := 0; i < n-1; i++ {
			c := b.y[sorted[i]]
			sqLeft += float64(2*left[c] + 1)
			sqRight -= float64(2*right[c] - 1)
			left[c]++
			right[c]--

			v, next := b.x[sorted[i]][f], b.x[sorted[i+1]][f]
			if v == next {
				continue
			}

			nl, nr := float64(i+1), float64(n-i-1)
			gl := 1 - sqLeft/(nl*nl)
			gr := 1 - sqRight/(nr*nr)
			weighted := (nl*gl + nr*gr) / float64(n)
			if weighted < best.impurity {
				threshold := v + (next-v)/2
				if threshold >= next {
					threshold = v
				}
				best = split{
					ok:        true,
					feature:   f,
					threshold: threshold,
					impurity:  weighted,
					left:      gl,
					right:     gr,
					nLeft:     i + 1,
				}
			}
		}
	}
	return best
}

func gini(counts []int, n int) float64 {
	if n == 0 {
		return 0
	}
	sq := 0.0
	for _, c := range counts {
		p := float64(c) / float64(n)
		sq += p * p
	}
	return 1 - sq
}

// majority returns the most frequent class, the lowest one on ties.
func majority(counts []int) int {
	m := 0
	for i, c := range counts {
		if c > counts[m] {
			m = i
		}
	}
	return m
}
