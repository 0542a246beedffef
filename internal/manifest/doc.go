// Package manifest loads declarative command-tree definitions from HCL
// files. A manifest describes one root command with nested command, option,
// argument and directive blocks; loading produces a plain symbol tree that
// the caller typically feeds through tree.Validate before use.
package manifest
