package concurrent_test

import (
	"sort"
	"testing"

	"lintang/labyrinthx/pkg/concurrent"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPool(t *testing.T) {
	jobs := 50
	wp := concurrent.NewWorkerPool[concurrent.Job[int], int](4, jobs)
	for i := 0; i < jobs; i++ {
		wp.AddJob(concurrent.Job[int]{ID: i, JobItem: i})
	}
	wp.Close()

	wp.Start(func(job concurrent.Job[int]) int {
		return job.JobItem * job.JobItem
	})
	wp.Wait()

	got := []int{}
	for res := range wp.CollectResults() {
		got = append(got, res)
	}
	sort.Ints(got)

	want := make([]int, jobs)
	for i := range want {
		want[i] = i * i
	}
	assert.Equal(t, want, got)
}
