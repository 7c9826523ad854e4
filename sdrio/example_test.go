package sdrio_test

import (
	"bytes"
	"fmt"
	"os"

	"github.com/katalvlaran/sdrkit/sdr"
	"github.com/katalvlaran/sdrkit/sdrio"
)

// ExampleSave writes a small pattern as JSON, the format meant for
// human inspection and cross-tool exchange.
func ExampleSave() {
	p, _ := sdr.NewPattern([]int{2, 3})
	_ = p.SetSparse([]int{1, 4})

	_ = sdrio.Save(os.Stdout, p, sdrio.JSON)

	// Output:
	// {
	//   "version": 1,
	//   "dimensions": [
	//     2,
	//     3
	//   ],
	//   "encoding": "sparse",
	//   "sparse": [
	//     1,
	//     4
	//   ]
	// }
}

// ExampleLoad round-trips a pattern through the compact binary format.
func ExampleLoad() {
	src, _ := sdr.NewPattern([]int{4, 4})
	_ = src.SetSparse([]int{4, 5, 10})

	buf := &bytes.Buffer{}
	_ = sdrio.Save(buf, src, sdrio.Binary)

	got, _ := sdrio.Load(buf, sdrio.Binary)
	fmt.Println(got)

	// Output:
	// SDR{4, 4}: 4, 5, 10
}
