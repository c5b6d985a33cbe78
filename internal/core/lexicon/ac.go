package lexicon

import (
	"sort"
	"strings"
)

// automaton is a byte-level Aho-Corasick matcher over the slang keys.
// Keys are matched literally; a fixed 256-way table per node keeps the
// scan free of map lookups.
type automaton struct {
	nodes []acNode
	keys  []string
}

type acNode struct {
	trans  [256]int32
	fail   int32
	output []int32 // key ids ending here, own key first
}

func newNode() acNode {
	var n acNode
	for i := range n.trans {
		n.trans[i] = -1
	}
	return n
}

func buildAutomaton(keys []string) *automaton {
	a := &automaton{nodes: []acNode{newNode()}, keys: keys}
	for id, k := range keys {
		a.add(k, int32(id))
	}
	a.link()
	return a
}

func (a *automaton) add(pat string, id int32) {
	if pat == "" {
		return
	}
	state := int32(0)
	for i := 0; i < len(pat); i++ {
		b := pat[i]
		nxt := a.nodes[state].trans[b]
		if nxt == -1 {
			nxt = int32(len(a.nodes))
			a.nodes[state].trans[b] = nxt
			a.nodes = append(a.nodes, newNode())
		}
		state = nxt
	}
	a.nodes[state].output = append(a.nodes[state].output, id)
}

// link computes failure links breadth first and merges outputs along them
func (a *automaton) link() {
	q := make([]int32, 0, len(a.nodes))
	for b := 0; b < 256; b++ {
		if s := a.nodes[0].trans[b]; s != -1 {
			a.nodes[s].fail = 0
			q = append(q, s)
		}
	}
	for qi := 0; qi < len(q); qi++ {
		r := q[qi]
		for b := 0; b < 256; b++ {
			s := a.nodes[r].trans[b]
			if s == -1 {
				continue
			}
			q = append(q, s)
			f := a.nodes[r].fail
			for f != 0 && a.nodes[f].trans[b] == -1 {
				f = a.nodes[f].fail
			}
			if nxt := a.nodes[f].trans[b]; nxt != -1 && nxt != s {
				a.nodes[s].fail = nxt
			}
			a.nodes[s].output = append(a.nodes[s].output, a.nodes[a.nodes[s].fail].output...)
		}
	}
}

type span struct{ start, end, id int }

// matches returns every occurrence of every key, overlapping ones included
func (a *automaton) matches(text string) []span {
	var out []span
	state := int32(0)
	for i := 0; i < len(text); i++ {
		b := text[i]
		for state != 0 && a.nodes[state].trans[b] == -1 {
			state = a.nodes[state].fail
		}
		if nxt := a.nodes[state].trans[b]; nxt != -1 {
			state = nxt
		}
		for _, id := range a.nodes[state].output {
			out = append(out, span{start: i + 1 - len(a.keys[id]), end: i + 1, id: int(id)})
		}
	}
	return out
}

// replace substitutes keys with repl[id] in one left-to-right pass.
// Overlaps resolve leftmost first, then longest. Replacement text is never rescanned.
func (a *automaton) replace(text string, repl []string) string {
	if len(a.keys) == 0 || text == "" {
		return text
	}
	ms := a.matches(text)
	if len(ms) == 0 {
		return text
	}
	sort.Slice(ms, func(i, j int) bool {
		if ms[i].start != ms[j].start {
			return ms[i].start < ms[j].start
		}
		return ms[i].end > ms[j].end
	})

	var b strings.Builder
	b.Grow(len(text))
	pos := 0
	for _, m := range ms {
		if m.start < pos {
			continue
		}
		b.WriteString(text[pos:m.start])
		b.WriteString(repl[m.id])
		pos = m.end
	}
	b.WriteString(text[pos:])
	return b.String()
}
