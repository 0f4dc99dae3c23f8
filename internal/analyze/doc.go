// Package analyze provides package loading, method set extraction and
// capability detection for cursor variant types.
//
// It uses golang.org/x/tools/go/packages with AST and go/types
// to build an in-memory model of named types and their methods.
//
// Key types:
//   - TypeID: package import path + type name
//   - TypeInfo: describes a named type, its type parameters and methods
//   - MethodInfo: describes a method signature and where it was declared
//   - Primitives: which cursor primitives a type provides, with near misses
package analyze
