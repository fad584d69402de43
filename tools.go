//go:build tools
// +build tools

// Package tools declares tool dependencies for this module.
//
// mockgen is invoked through the go:generate directives of contract/ and
// repositories/; importing it here keeps it pinned in go.mod.
package presence_lab

import (
	_ "go.uber.org/mock/mockgen"
)
