// Package host is the boundary a host runtime uses to drive rlog.
//
// A host registers an external listener handle (a Consumer) and toggles
// verbosity. Each accepted entry reaches the handle as one formatted line:
//
//	[level='log'; file='window.go'; line=42; function='openWindow'] what: opened
//
// Hosts whose strings are UTF-16 code units register a UTF16Consumer and
// receive the same line transcoded inside the proxy.
package host
