// Package cocinakit converts bibliographic description records between MODS
// XML, MARC and DataCite JSON and a canonical descriptive model (cocina).
package cocinakit

// Version of the library and tools.
const Version = "0.3.1"
