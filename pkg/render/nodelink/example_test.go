package nodelink_test

import (
	"fmt"

	"github.com/matzehuels/adjcode/pkg/adjlist"
	"github.com/matzehuels/adjcode/pkg/render/nodelink"
)

func ExampleToDOT() {
	g, _ := adjlist.ParseLines([]string{"1: 2", "2: 3", "3:"}, adjlist.Options{})

	fmt.Print(nodelink.ToDOT(g, nodelink.Options{}))
	// Output:
	// graph G {
	//   bgcolor="transparent";
	//   node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.4, fixedsize=true];
	//
	//   "1";
	//   "2";
	//   "3";
	//
	//   "1" -- "2";
	//   "2" -- "3";
	// }
}
