// Package objects provides the concrete domain and relationship object
// types. Every type embeds core.CommonProperties and implements the
// core.Object contract, so bundles index them uniformly without knowing the
// concrete type list.
package objects
