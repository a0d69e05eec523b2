// Package filter prunes trees with compiled boolean expressions before
// diffing, e.g. to ignore volatile subtrees of a document.
package filter
