// Package internalcheck holds static checks over the module's own source.
//
// The tests load packages with golang.org/x/tools/go/packages and inspect
// their syntax trees:
//
//   - only internal/bindings may import "C";
//   - the Bridge entry points never read their context or connection handle;
//   - the files holding the callback entry points import no logging or
//     formatting package.
//
// The package has no exported API.
package internalcheck
