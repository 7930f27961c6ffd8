// Command hntriectl builds, inspects, and queries hostname tries stored
// in a bbolt database via package store.
package main

func main() {
	execute()
}
