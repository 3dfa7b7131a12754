package loader

import "github.com/vvka-141/memload/pkg/memload"

// Partition splits a statement list into exactly workers chunks. Each chunk
// is the contiguous slice [i*chunkSize, (i+1)*chunkSize) of the input with
// chunkSize = len(stmts) / workers, so chunks may be empty when there are
// fewer statements than workers.
//
// The policy decides what happens to the tail left over when the count does
// not divide evenly: RemainderRoundRobin deals the leftover statements one
// per chunk starting from the first, RemainderDrop discards them (the
// historical chunking behavior, kept for compatibility testing).
//
// Chunks are freshly allocated copies; workers may consume them freely.
func Partition(stmts []string, workers int, policy memload.RemainderPolicy) [][]string {
	if workers < 1 {
		workers = 1
	}

	chunkSize := len(stmts) / workers
	chunks := make([][]string, workers)
	for i := range chunks {
		chunk := make([]string, chunkSize, chunkSize+1)
		copy(chunk, stmts[i*chunkSize:(i+1)*chunkSize])
		chunks[i] = chunk
	}

	if policy == memload.RemainderRoundRobin {
		for i, stmt := range stmts[workers*chunkSize:] {
			chunks[i%workers] = append(chunks[i%workers], stmt)
		}
	}

	return chunks
}
