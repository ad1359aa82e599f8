// Package search debounces search-as-you-type input so only the last query
// in a quiet period reaches the backend.
package search
