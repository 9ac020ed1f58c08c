package main

import (
	"fmt"
	"os"

	"github.com/go-cedar/cedar"
)

func main() {
	c := cedar.New()
	k := []byte("bachelor")
	k2 := []byte("badge")

	c.Update(k, 1)
	v, exists := c.ExactMatchSearch(k)
	fmt.Printf("key %s exists %t with value %v\n", k, exists, v)

	c.Update(k2, 2)
	matches, _ := c.Predict([]byte("ba"), 0)
	for _, m := range matches {
		suf, _ := c.Suffix(m.LeafID, m.Length)
		fmt.Printf("%s%s : %d\n", "ba", suf, m.Value)
	}

	c.PrettyPrint(os.Stdout)
}
