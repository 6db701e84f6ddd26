// Copyright 2018 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package biosimd provides capability-selected kernels for the two
// per-base C5 aggregators (package qcmetrics): base-class counting and
// quality-histogram scatter. Each kernel has a portable scalar
// implementation and a faster path taken when the running CPU reports
// AVX2 (detected via golang.org/x/sys/cpu, checked once at package init so
// the choice never changes mid-run); both paths are required to produce
// identical counts on the same input (spec §9: "SIMD kernels must produce
// identical PartialMetrics to scalar on the same input").
package biosimd
