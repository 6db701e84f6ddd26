// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package circular provides small helpers for sizing circular buffers, used
// by the gzip ring buffer in package fastq.
package circular
