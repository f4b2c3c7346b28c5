// SPDX-License-Identifier: MIT

// Package batch runs the compress-then-aggregate pipeline over many tracked
// entities at once.
//
// Each entity's trajectory is processed independently: session.Compress
// followed by flow.StatisticsWith, one call per entity. Entities run on a
// bounded errgroup (Options.Workers) and their flow tables are summed into a
// shared core.Network, so the merged result does not depend on scheduling
// order. Nothing is parallelised inside a single entity; the walks are
// inherently sequential.
//
// Failure policy: the first entity that fails cancels the remaining work and
// Run returns an *EntityError naming it. No partial Result is returned.
//
// Observability: Options.Logger receives one debug record per entity and an
// info record per run (nil logger is silent); Options.Metrics, when set,
// counts observations, sessions, linked transitions and entity outcomes.
package batch
