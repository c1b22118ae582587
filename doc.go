// Package foamgraph is a headless 2D plot-geometry engine for live
// data-visualization dashboards.
//
// It owns the parts of a plotting widget that have actual invariants: the
// mapping between data space and device pixels, the "target" (requested) and
// "view" (aspect-corrected) ranges of a canvas, auto-ranging over the bounds
// of the attached plot items, and the per-item bounding computation for the
// different item kinds. Rendering, input handling and widget layout are left
// to the embedding GUI layer, which consumes the canvas through a small
// surface: the device rectangle on resize, drag deltas for pan and zoom, and
// change notifications for dependent overlays such as axes and colorbars.
//
// Canvas and Items
//
// A Canvas owns a set of attached items. Every mutation (SetData on an
// item, AddItem, RemoveItem, SetTargetRange, Resize) synchronously
// recomputes the dependent state before returning: item bounds, aggregate
// bounds, target and view rect, transform. There is no background work and
// no locking; a canvas and its items belong to one logical thread of
// control.
//
// An item is attached to at most one canvas at a time. Attaching an item
// that already belongs to a canvas fails with ErrAlreadyAttached instead of
// silently re-parenting it.
//
// Ranges
//
// While auto-ranging is enabled the target rect tracks the union of all
// visible items' bounds. Any direct range-setting call (SetTargetRange, a
// pan or a zoom) freezes the range; ViewAll recomputes from the data and
// re-enables auto-ranging. When the aspect ratio is locked the view rect is
// the target rect enlarged, never shrunk, on one axis so that the data
// aspect matches the locked ratio on the current device rectangle. The
// target rect itself is left untouched by aspect correction.
package foamgraph
