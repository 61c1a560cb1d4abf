// Package handler is the HTTP entry point of the directory API.
//
// It binds and validates requests through the validation package, calls the
// service layer and writes JSON responses.
package handler
