// Command layoutctl rebalances the kernel/application boundary recorded in
// a firmware tree's linker layout files.
package main

func main() {
	execute()
}
