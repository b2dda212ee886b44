// Package extractors contains reference extractor implementations.
//
// Extractors implement the driven.ReferenceExtractor port: given one
// document, they produce the set of canonical in-scope image paths it
// references. The markdown extractor is the only implementation today;
// the package layout leaves room for other document formats.
package extractors
