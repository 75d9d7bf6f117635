package main

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"
)

func TestNoDirectOsExit(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), NoDirectOsExit, "exitcheck")
}

func TestSQLInterp(t *testing.T) {
	analysistest.Run(t, analysistest.TestData(), SQLInterp, "sqlinterp")
}
