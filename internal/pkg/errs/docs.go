// Package errs provides the error vocabulary shared by every layer of the
// embroidery service.
//
// Two families live here:
//
// Value errors describe why a single value was rejected while building a
// domain object or a command. Each has a sentinel (ErrValueIsRequired,
// ErrValueIsInvalid, ErrValueIsOutOfRange, ErrObjectNotFound), a struct
// carrying the offending parameter, constructors with and without cause,
// and an Unwrap method returning the sentinel so errors.Is works.
//
// Coded errors (*Error) are what use cases return to the transport layer.
// A Code selects the HTTP status and public message through MetadataFor,
// and WithDetails attaches the list of offending items (missing ids,
// insufficient quantities, already confirmed returns) so a batch rejection
// always enumerates everything that was wrong.
//
// CodeOf classifies any error, coded or not:
//
//	if errs.CodeOf(err) == errs.CodeNotFound {
//	    // 404
//	}
package errs
