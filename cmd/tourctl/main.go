// Copyright (c) 2026 Travelist. All rights reserved.
// Author: platform@travelist.ru

// Command tourctl is the operator CLI of the tour catalogue.
package main

import "github.com/travelist/tourcat/internal/cli"

func main() {
	cli.Execute()
}
