// The saltid command inspects and exercises salted identifier
// allocation from the command line.
package main

func main() {
	Execute()
}
