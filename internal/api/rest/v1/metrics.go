package v1

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	projectsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renpy_editor_projects_created_total",
		Help: "Total number of created projects.",
	})

	charactersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renpy_editor_characters_created_total",
		Help: "Total number of created characters.",
	})

	linesCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "renpy_editor_dialogue_lines_created_total",
		Help: "Total number of added dialogue lines.",
	})

	exportsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "renpy_editor_exports_total",
			Help: "Total number of script exports by format.",
		},
		[]string{"format"},
	)
)
