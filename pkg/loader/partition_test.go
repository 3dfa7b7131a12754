package loader

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/memload/pkg/memload"
)

func statements(n int) []string {
	stmts := make([]string, n)
	for i := range stmts {
		stmts[i] = fmt.Sprintf("CREATE ({id: %d});", i)
	}
	return stmts
}

func TestPartition_EvenSplit(t *testing.T) {
	chunks := Partition(statements(9), 3, memload.RemainderRoundRobin)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.Len(t, chunk, 3)
	}
}

func TestPartition_DropTruncatesRemainder(t *testing.T) {
	stmts := statements(10)
	chunks := Partition(stmts, 3, memload.RemainderDrop)

	require.Len(t, chunks, 3)
	total := 0
	for _, chunk := range chunks {
		assert.Len(t, chunk, 3)
		total += len(chunk)
	}

	// sum(len(chunk)) == (L/W)*W, which is < L when L%W != 0.
	assert.Equal(t, (10/3)*3, total)
	for _, chunk := range chunks {
		assert.NotContains(t, chunk, stmts[9])
	}
}

func TestPartition_RoundRobinKeepsRemainder(t *testing.T) {
	stmts := statements(10)
	chunks := Partition(stmts, 3, memload.RemainderRoundRobin)

	require.Len(t, chunks, 3)
	assert.Len(t, chunks[0], 4) // gets the leftover statement
	assert.Len(t, chunks[1], 3)
	assert.Len(t, chunks[2], 3)

	seen := make(map[string]bool)
	for _, chunk := range chunks {
		for _, s := range chunk {
			seen[s] = true
		}
	}
	assert.Len(t, seen, 10)
}

func TestPartition_MoreWorkersThanStatements(t *testing.T) {
	chunks := Partition(statements(2), 5, memload.RemainderRoundRobin)
	require.Len(t, chunks, 5)
	assert.Len(t, chunks[0], 1)
	assert.Len(t, chunks[1], 1)
	for _, chunk := range chunks[2:] {
		assert.Empty(t, chunk)
	}
}

func TestPartition_MoreWorkersThanStatements_Drop(t *testing.T) {
	chunks := Partition(statements(2), 5, memload.RemainderDrop)
	require.Len(t, chunks, 5)
	for _, chunk := range chunks {
		assert.Empty(t, chunk)
	}
}

func TestPartition_Empty(t *testing.T) {
	chunks := Partition(nil, 3, memload.RemainderRoundRobin)
	require.Len(t, chunks, 3)
	for _, chunk := range chunks {
		assert.Empty(t, chunk)
	}
}

func TestPartition_ZeroWorkersClampedToOne(t *testing.T) {
	chunks := Partition(statements(4), 0, memload.RemainderRoundRobin)
	require.Len(t, chunks, 1)
	assert.Len(t, chunks[0], 4)
}

func TestPartition_ChunksAreCopies(t *testing.T) {
	stmts := statements(6)
	chunks := Partition(stmts, 2, memload.RemainderRoundRobin)

	chunks[0] = append(chunks[0], "CREATE ({id: 99});")
	assert.Equal(t, statements(6), stmts)
	assert.Len(t, chunks[1], 3)
}
