//go:build tools

// Package tools fija las dependencias de herramientas de desarrollo en go.mod.
package tools

import (
	_ "github.com/swaggo/swag/cmd/swag"
)
