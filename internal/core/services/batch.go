package services

// DefaultBatchSize is the number of meaning ids sent per lookup request.
const DefaultBatchSize = 50

// Chunk splits items into consecutive chunks of size, preserving order.
// The last chunk may be shorter. A size <= 0 yields a single chunk, and
// empty input yields no chunks. Chunks share the backing array of items.
func Chunk[T any](items []T, size int) [][]T {
	if len(items) == 0 {
		return nil
	}
	if size <= 0 || size >= len(items) {
		return [][]T{items}
	}

	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunks = append(chunks, items[start:end:end])
	}
	return chunks
}
