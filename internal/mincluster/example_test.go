package mincluster_test

import (
	"fmt"

	"github.com/mawngo/mincluster/internal/mincluster"
)

func ExampleCluster() {
	// fixedSource(0) makes 1 the first head.
	clusters, heads, err := mincluster.Cluster(2, []int{1, 2, 3, 10}, mincluster.WithRand(fixedSource(0)))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i, h := range heads {
		fmt.Println(h, clusters[i])
	}
	// Output:
	// 1 [2 3]
	// 10 []
}

func ExampleState_Step() {
	s, err := mincluster.New(3, []float64{0, 4, 5, 9}, mincluster.WithRand(fixedSource(0)))
	if err != nil {
		fmt.Println(err)
		return
	}
	for !s.Done() {
		if _, err := s.Step(); err != nil {
			fmt.Println(err)
			return
		}
		fmt.Println(s.Heads(), s.Clusters())
	}
	// Output:
	// [0 9] [[4] [5] []]
	// [0 9 4] [[] [] [5]]
}
