// Command remoting-demo exercises a running remoting server from the
// client side: it stores a dictionary and materializes it, writes an item
// into it, and demonstrates the addition and equality operators on a
// stored integer.
//
// Usage:
//
//	go run ./cmd/remoting-demo -addr :9090
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/jeeves-cluster-organization/remoteable/client"
	"github.com/jeeves-cluster-organization/remoteable/logging"
)

func main() {
	addr := flag.String("addr", ":9090", "remoting server address")
	flag.Parse()

	logger := logging.NewStdLogger()

	c, err := client.Dial(*addr, logger)
	if err != nil {
		fail("dial_failed", err)
	}
	defer c.Close()

	dict := map[string]any{"greeting": "hello", "count": int64(1)}
	handle, err := c.Store(dict)
	if err != nil {
		fail("store_failed", err)
	}
	defer handle.Release()

	whole, err := handle.AsDict()
	if err != nil {
		fail("evaluate_failed", err)
	}
	fmt.Printf("stored dictionary = %v\n", whole)

	if err := handle.SetItem("greeting", "hi"); err != nil {
		fail("set_item_failed", err)
	}

	updated, err := handle.AsDict()
	if err != nil {
		fail("evaluate_failed", err)
	}
	fmt.Printf("updated dictionary = %v\n", updated)

	counter, err := c.Store(int64(41))
	if err != nil {
		fail("store_failed", err)
	}
	defer counter.Release()

	sumHandle, err := counter.Add(int64(1))
	if err != nil {
		fail("add_failed", err)
	}
	defer sumHandle.Release()
	sum, err := sumHandle.AsInt()
	if err != nil {
		fail("evaluate_failed", err)
	}
	fmt.Printf("counter + 1 = %v\n", sum)

	equal, err := counter.Equals(int64(41))
	if err != nil {
		fail("equals_failed", err)
	}
	fmt.Printf("counter == 41: %v\n", equal)
}

func fail(stage string, err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", stage, err.Error())
	os.Exit(1)
}
