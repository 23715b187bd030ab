package datastore

import (
	"errors"
	"fmt"
	"net/http"
)

// Store identifies which backing store produced a result or an error.
type Store string

const (
	StoreLocal     Store = "local"
	StoreRemote    Store = "remote"
	StoreFederated Store = "federated"
	StoreNone      Store = "none"
)

var (
	// ErrNotFound is returned when a by-id or by-key lookup matched nothing in the targeted store.
	ErrNotFound = errors.New("requested record not found")

	// ErrRemoteUnavailable matches every *RemoteError except remote 404s.
	ErrRemoteUnavailable = errors.New("remote store unavailable")

	// ErrUnsupportedOperation is returned for operations that have no meaning in a store.
	ErrUnsupportedOperation = errors.New("operation not supported by this store")

	// ErrConstruction marks a store that could not be initialised.
	ErrConstruction = errors.New("store construction failed")

	// ErrDuplicateKey is returned when a write violates a unique constraint.
	ErrDuplicateKey = errors.New("duplicate key value violates unique constraint")

	// ErrReferenced is returned when a write violates a foreign key constraint.
	ErrReferenced = errors.New("foreign key constraint violated")

	// ErrInvalidID is returned for id 0, which belongs to neither store.
	ErrInvalidID = errors.New("invalid record id")

	// ErrCrossStoreReference is returned when a payload bound for one store
	// carries a foreign key into the other store.
	ErrCrossStoreReference = errors.New("foreign key refers to a record in the other store")

	// ErrValidation is returned for payloads rejected before reaching a store.
	ErrValidation = errors.New("validation failed")
)

// StoreError tells callers which store and entity an operation failed against.
type StoreError struct {
	Store  Store
	Entity string
	Op     string
	Err    error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s store: %s %s: %v", e.Store, e.Op, e.Entity, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Wrap annotates err with store, entity and operation. A nil err stays nil.
func Wrap(store Store, entity, op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Store: store, Entity: entity, Op: op, Err: err}
}

// RemoteError is a transport failure or a non-2xx answer from the remote record service.
type RemoteError struct {
	Method     string
	Endpoint   string
	StatusCode int // 0 when the request never got a response
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Endpoint, e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
	default:
		return fmt.Sprintf("%s %s: %s", e.Method, e.Endpoint, e.Message)
	}
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Is keeps "no such record" distinguishable from "could not ask".
func (e *RemoteError) Is(target error) bool {
	if e.StatusCode == http.StatusNotFound {
		return target == ErrNotFound
	}
	return target == ErrRemoteUnavailable
}

// ConstructionError reports a store that failed to initialise.
type ConstructionError struct {
	Store Store
	Err   error
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("%v: %s: %v", ErrConstruction, e.Store, e.Err)
}

func (e *ConstructionError) Unwrap() error { return e.Err }

func (e *ConstructionError) Is(target error) bool { return target == ErrConstruction }

// StoreOf returns the store an error originated from, or "" when unknown.
func StoreOf(err error) Store {
	var se *StoreError
	if errors.As(err, &se) {
		return se.Store
	}
	var re *RemoteError
	if errors.As(err, &re) {
		return StoreRemote
	}
	return ""
}
