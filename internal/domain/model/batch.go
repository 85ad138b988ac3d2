package model

// Batch is a contiguous run of variant ids sent in one mutation.
type Batch struct {
	Index      int
	Start      int
	VariantIDs []string
}

// SplitBatches cuts ids into contiguous batches of at most size items, in order.
func SplitBatches(ids []string, size int) []Batch {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	batches := make([]Batch, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, Batch{
			Index:      len(batches),
			Start:      start,
			VariantIDs: ids[start:end],
		})
	}
	return batches
}

// UniqueStrings drops repeated values and keeps first-seen order.
func UniqueStrings(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// BatchRecord describes one committed association batch.
type BatchRecord struct {
	RunID       string
	ProfileID   string
	ProfileName string
	BatchIndex  int
	VariantIDs  []string
}
