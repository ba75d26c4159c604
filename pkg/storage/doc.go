// Copyright © 2018 One Concern

// Package storage provides interface to handle backend storage objects.
//
// This package supports the following backends:
//   - GCS (Google)
//   - S3 (AWS)
//   - local file system
//   - HTTP(S) servers (read only)
//
// Remote backends are usually wrapped by the cache package, so that large
// archives are staged on local disk before being consumed.
package storage
