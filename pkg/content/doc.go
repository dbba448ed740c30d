// Package content resolves input configurations (custom text, fetched string
// lists, number ranges and date ranges) into value sequences, applies the
// casing and sort transforms, and composes the sequences into one string per
// placeholder.
//
// Everything here is stateless apart from the Resolver's optional random
// source. List content arrives through the Fetcher collaborator; a failed
// or empty fetch contributes an empty sequence instead of failing the
// request.
package content
