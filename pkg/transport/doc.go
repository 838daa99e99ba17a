// Package transport provides an HTTP implementation of wire.Executor.
//
// Arguments are sent as JSON, a urlencoded form or multipart/form-data. A call
// with a *wire.InputFile argument is always sent as multipart.
package transport
