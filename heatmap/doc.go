// Package heatmap adapts raw digitizer heatmap data into the types
// wdt.Run consumes: it builds an image.Image[float64] from a rectangular
// reading, and provides the foreground, inclusion, and cost adapters a
// contact-detection pipeline typically needs — a threshold-based
// ForegroundFunc, rectangular-region IncludedFuncs, and an
// intensity-derived cost.Oracle (GradientCost).
//
// The land/water framing mirrors gridgraph's LandThreshold convention:
// cells at or above a threshold are "land" (foreground, i.e. contact),
// cells below are "water" (background).
package heatmap
