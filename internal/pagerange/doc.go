// Package pagerange computes pagination controls for paged listings.
//
// The package is split into two halves:
//   - Pure computation: ComputeRange turns (current, total, delta) into the ordered
//     sequence of page tokens to render, Compute adds the enabled/disabled state of
//     every control, and RequestPageChange validates a single "go to page N" step.
//   - Externally-owned state: Navigator holds the current page for one UI surface and
//     applies the page-change callback contract on top of RequestPageChange.
//
// Nothing in this package keeps hidden state between calls. Identical inputs always
// produce identical outputs, so any UI layer (web handler, CLI, terminal pager) can
// recompute the controls on every render.
package pagerange
