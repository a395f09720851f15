// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package awsx loads AWS SDK v2 configuration and builds the S3 client used
// for s3:// reference sources.
package awsx
