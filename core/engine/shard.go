// core/engine/shard.go
package engine

import "fmt"

// ConfigError reports an unusable engine configuration.
type ConfigError struct {
	Workers int
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: worker count %d (must be >= 1)", e.Workers)
}

// Partition assigns pattern indices 0..n-1 to `workers` shards round-robin:
// index p lands in shard p%workers. The shards partition the index range
// exactly; with n < workers the trailing shards stay empty. Round-robin
// keeps the load even regardless of pattern-length skew.
func Partition(n, workers int) ([][]int, error) {
	if workers <= 0 {
		return nil, &ConfigError{Workers: workers}
	}
	shards := make([][]int, workers)
	for p := 0; p < n; p++ {
		w := p % workers
		shards[w] = append(shards[w], p)
	}
	return shards, nil
}
