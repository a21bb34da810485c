// Colorplane - a two-dimensional colour scale for bivariate data
//
// Colorplane maps two continuous variables onto a single colour plane,
// encoding both variables in one colour per data point.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"github.com/jmylchreest/colorplane/internal/cli"
)

func main() {
	cli.Execute()
}
