package calculus_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/qcnet/calculus"
)

// ExampleParse loads the linear point calculus and composes two labels.
func ExampleParse() {
	text := `relations
< = >

converse
< >
= =
> <

composition
< < ( < )
< = ( < )
< > ( < = > )
= < ( < )
= = ( = )
= > ( > )
> < ( < = > )
> = ( > )
> > ( > )
`
	c, err := calculus.Parse(strings.NewReader(text))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	lt, _ := c.Encode("<")
	leq, _ := c.EncodeSet([]string{"<", "="})

	// "before or equal" composed with "before or equal" stays "before or equal".
	fmt.Println(c.Decode(c.Compose(leq, leq)))
	// Composing opposite orders yields no information at all.
	fmt.Println(c.Decode(c.Compose(lt, c.Converse(lt))))
	// Output:
	// [< =]
	// [< = >]
}
