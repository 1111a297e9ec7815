// Command nbtreedemo is an external collaborator that exercises the
// nbst lock-free set through its public surface only: insert, delete,
// contains, snapshot, size. It holds no persisted state across process
// invocations, per the core's no-persistence, no-replication contract.
package main

import "nbst/cmd/nbtreedemo/cmd"

func main() {
	cmd.Execute()
}
