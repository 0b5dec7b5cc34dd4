package refine_test

import (
	"fmt"

	"github.com/katalvlaran/qcnet/calculus"
	"github.com/katalvlaran/qcnet/network"
	"github.com/katalvlaran/qcnet/refine"
)

// ExampleRefine decides consistency of a small point-calculus network
// whose closure alone leaves composite labels.
func ExampleRefine() {
	c, err := calculus.New(
		[]string{"<", "=", ">"},
		map[string]string{"<": ">", "=": "=", ">": "<"},
		map[string]map[string][]string{
			"<": {"<": {"<"}, "=": {"<"}, ">": {"<", "=", ">"}},
			"=": {"<": {"<"}, "=": {"="}, ">": {">"}},
			">": {"<": {"<", "=", ">"}, "=": {">"}, ">": {">"}},
		},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	leq, _ := c.EncodeSet([]string{"<", "="})
	geq, _ := c.EncodeSet([]string{"=", ">"})

	// a ≤ b ≤ c together with a ≥ c only leaves a = b = c.
	net := network.New(c)
	net.Insert("a", "b", leq)
	net.Insert("b", "c", leq)
	net.Insert("a", "c", geq)

	consistent, err := refine.Refine(net)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("consistent:", consistent)

	// The top-level closure already tightened the network in place.
	fmt.Println("a,b:", c.Decode(net.Lookup("a", "b")))
	// Output:
	// consistent: true
	// a,b: [=]
}
