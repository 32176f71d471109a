package dlutil

var threadsLevels = []struct {
	threads int
	size    int64
}{
	{1, 10 << 20},
	{2, 50 << 20},
	{4, 200 << 20},
	{8, 500 << 20},
}

// BestThreads picks a worker count for a transfer of size bytes, capped at max.
func BestThreads(size int64, max int) int {
	for _, thread := range threadsLevels {
		if size < thread.size {
			return min(thread.threads, max)
		}
	}
	return max
}
