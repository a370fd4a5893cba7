// Package template defines the templating seam the addendum engine renders
// DOCX fragments through. The contract mirrors the github.com/goliatone/go-template
// engine so hosts already using that stack can pass their engine straight in.
package template
