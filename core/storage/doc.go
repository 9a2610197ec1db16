// Package storage provides the application's local key-value persistence.
//
// Storage namespaces every key as "<appName>-<key>" and JSON-encodes values
// before handing them to a Backend. The plain helpers never fail:
//
//	store := storage.New(storage.NewFileBackend("./.minikit"), "bhapp")
//
//	store.Set("token", "abc")
//	token := storage.Load(store, "token", "")    // "abc"
//	missing := store.Get("nope", "fallback")      // "fallback"
//	store.Remove("token")
//
// Get and Load return the default whenever the backend errors or panics, the
// key is absent, the value cannot be decoded, or the stored value is a zero
// value (false, 0, "", nil). Set and Remove swallow failures and only log them
// at debug level. Callers cannot tell "absent" from "unavailable" through these
// helpers; GetE, SetE and RemoveE exist for the few places that must.
//
// # Backends
//
//   - MemoryBackend: process-local map, the default for tests and CLIs
//   - FileBackend: one file per key under a directory
//   - redis and s3 backends live under integration/
//
// Backends report missing keys with ErrNotFound.
package storage
