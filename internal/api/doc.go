// Package api provides HTTP handlers for the API. Handlers translate
// between the HTTP surface and the record store's operation set, keeping
// framework types out of the store contract.
package api
