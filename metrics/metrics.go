// Package metrics exposes Prometheus counters over the engine's scheduling
// and fault events. The core (task/sched/timer/fault) has no dependency on
// this package — it is pure external observability layered on top of the
// engine, the same way every container/orchestration repo in the corpus
// keeps metrics out of its core domain logic.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ContextSwitches counts every time sched.Select returns a task index
	// different from the previously running one.
	ContextSwitches = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "microkernel",
		Name:      "context_switches_total",
		Help:      "Total number of scheduler context switches.",
	})

	// NotificationsFired counts every IRQ notification (engine NotifyIRQ)
	// whose Task.Post returned true (i.e. woke an open-receive task). Wakes
	// caused by timer expiry or by fault notification are not counted.
	NotificationsFired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "microkernel",
		Name:      "notifications_fired_total",
		Help:      "Total number of notification deliveries that woke a task.",
	})

	// TimersExpired counts every task timer that process_timers disabled
	// because its deadline had passed.
	TimersExpired = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "microkernel",
		Name:      "timers_expired_total",
		Help:      "Total number of task timers that expired.",
	})

	// FaultsForced counts every fault.ForceFault invocation, labeled by
	// fault kind.
	FaultsForced = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "microkernel",
		Name:      "faults_forced_total",
		Help:      "Total number of tasks forced into the Faulted state, by fault kind.",
	}, []string{"kind"})

	// RunnableTasks reports the current count of tasks in Healthy(Runnable).
	RunnableTasks = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "microkernel",
		Name:      "runnable_tasks",
		Help:      "Current number of tasks in the Runnable state.",
	})
)
