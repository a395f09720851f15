// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package source retrieves set blobs. A Catalog names the sets, a Reference
// returns the published version of each and a Candidate returns the local
// build. References may live on an HTTP server, in S3 or in a directory.
//
// Blobs that begin with a gzip header are inflated before they are returned.
package source
