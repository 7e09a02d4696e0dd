// Copyright 2016 The Goplace Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gp implements the quadratic wirelength modeling core of an
// analytical global placement engine: a netlist data model, a sparse
// symmetric linear-system builder, the HPWL-F, HPWL-R and Star
// wirelength models, B2B anchor forces, and the disruption metrics
// used by an outer Majorization-Minimization placement loop.
package gp
