// Package bundle implements the alias-bundle pipeline: compiling a launcher
// applet with osacompile, embedding a Finder alias to the source
// application, copying the source's custom icon, and resolving the original
// path out of an existing alias bundle.
//
// All components take absolute paths at their boundary and delegate the
// macOS-specific work to external tools through an osarun.Runner.
package bundle
