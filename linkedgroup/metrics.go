// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedgroup

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	updatesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "linkedgroup_updates_total",
		Help: "Total number of linked group updates computed",
	})

	updateFailuresTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkedgroup_update_failures_total",
		Help: "Number of failed linked group updates by error kind",
	}, []string{"kind"})

	cloneDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "linkedgroup_clone_duration_seconds",
		Help:    "Duration of cloning and transforming the children of a group",
		Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	})

	groupsUnlinkedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "linkedgroup_groups_unlinked_total",
		Help: "Number of groups unlinked while repairing link sets, by reason",
	}, []string{"reason"})
)
