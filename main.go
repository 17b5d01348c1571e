// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/invowk/structbench/cmd/structbench"

func main() {
	cmd.Execute()
}
