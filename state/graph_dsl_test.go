package state

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func ids(s ...string) []NodeId {
	out := make([]NodeId, 0, len(s))
	for _, x := range s {
		out = append(out, NodeId(x))
	}
	return out
}

func TestParseGraph_SimpleGraph(t *testing.T) {
	input := `1, 2
3, 4
1,3,5`
	pairs, err := ParseGraph(strings.Split(input, "\n"), ids("1", "2", "3", "4", "5"))
	assert.NoError(t, err)
	assert.ElementsMatch(t, pairs, []Pair[NodeId, NodeId]{
		{"1", "2"},
		{"3", "4"},
		{"1", "3"},
		{"3", "5"},
		{"1", "5"},
	})
}

func TestParseGraph_Groups(t *testing.T) {
	input := `a = 1,2
b=3,,,4
c=5,6
d=a,b
d,d
7,d`
	pairs, err := ParseGraph(strings.Split(input, "\n"), ids("1", "2", "3", "4", "5", "6", "7"))
	assert.NoError(t, err)
	assert.ElementsMatch(t, pairs, []Pair[NodeId, NodeId]{
		// d,d
		{"1", "2"},
		{"1", "3"},
		{"1", "4"},
		{"2", "3"},
		{"2", "4"},
		{"3", "4"},
		// 7,d
		{"1", "7"},
		{"2", "7"},
		{"3", "7"},
		{"4", "7"},
	})
}

func TestParseGraph_GroupUsedBeforeDefinition(t *testing.T) {
	input := `edge, core
core = a, b
edge = c`
	pairs, err := ParseGraph(strings.Split(input, "\n"), ids("a", "b", "c"))
	assert.NoError(t, err)
	assert.Equal(t, []Pair[NodeId, NodeId]{{"a", "c"}, {"b", "c"}}, pairs)
}

func TestParseGraph_SortedAndUnique(t *testing.T) {
	input := `b, a
a, b
c, a, b`
	pairs, err := ParseGraph(strings.Split(input, "\n"), ids("a", "b", "c"))
	assert.NoError(t, err)
	assert.Equal(t, []Pair[NodeId, NodeId]{{"a", "b"}, {"a", "c"}, {"b", "c"}}, pairs)
}

func TestParseGraph_Cycle(t *testing.T) {
	input := `a = b
b = c
c = a`
	_, err := ParseGraph(strings.Split(input, "\n"), nil)
	assert.ErrorContains(t, err, "cycle detected in graph: [a b c]")
}

func TestParseGraph_DupGroupName(t *testing.T) {
	input := `a = b
a = b
b = b`
	_, err := ParseGraph(strings.Split(input, "\n"), nil)
	assert.ErrorContains(t, err, "duplicate group name: a")
}

func TestParseGraph_SymbolError(t *testing.T) {
	input := `a = 1
b = 2`
	_, err := ParseGraph(strings.Split(input, "\n"), ids("1"))
	assert.ErrorContains(t, err, "2 is not a valid node/group")
}

func TestParseGraph_EmptyGroup(t *testing.T) {
	_, err := ParseGraph([]string{`a =`}, ids("1"))
	assert.ErrorContains(t, err, "node/group list must not be empty")
}

func TestParseGraph_GroupNameIsNodeName(t *testing.T) {
	_, err := ParseGraph([]string{`1 = 1`}, ids("1"))
	assert.ErrorContains(t, err, "group name must not be a node name: 1")
}

func TestParseGraph_InvalidGroupDefinition(t *testing.T) {
	_, err := ParseGraph([]string{`a = 1 = b`}, ids("1"))
	assert.ErrorContains(t, err, ". group definition must contain one '='")
}

func TestParseGraph_Single(t *testing.T) {
	_, err := ParseGraph([]string{`1`}, ids("1", "2"))
	assert.ErrorContains(t, err, "invalid pairing, [1]")
}

func TestParseGraph_None(t *testing.T) {
	_, err := ParseGraph([]string{``}, ids("1", "2"))
	assert.ErrorContains(t, err, "node/group list must not be empty")
}

func TestParseGraph_GroupsDeep(t *testing.T) {
	line := strings.Repeat("a,", 28) + "a"
	input := []string{"a = 1,2"}
	for _, g := range []string{"b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
		input = append(input, g+" = "+line)
	}
	input = append(input, "k,k,3")
	pairs, err := ParseGraph(input, ids("1", "2", "3", "4", "5", "6", "7"))
	assert.NoError(t, err)
	assert.ElementsMatch(t, pairs, []Pair[NodeId, NodeId]{
		{"1", "2"},
		{"1", "3"},
		{"2", "3"},
	})
}

func failGraph(t *testing.T, graph string) {
	t.Helper()
	_, err := ParseGraph(strings.Split(graph, "\n"), ids("1", "2", "3", "4", "5", "6", "7", "8", "9", "10"))
	assert.Error(t, err, graph)
}

func TestParseGraph_InvalidGraph(t *testing.T) {
	failGraph(t, `this graph is a baddie`)
	failGraph(t, `=========,,,,`)
	failGraph(t, `#`)
	failGraph(t, `\n\n\n\n\n\n`)
	failGraph(t, `1`)
	failGraph(t, `1,2,3,4,5,6,a`)
	failGraph(t, `1,2,3,4,5,6,7,8,9,10,11,12,13,14,15`)
	failGraph(t, `,,,,,,,,,,,,,,,,`)
	failGraph(t, `a=a`)
}
