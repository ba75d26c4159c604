// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/corpusy/cmd/corpusy/cmd"
)

func main() {
	cmd.Execute()
}
