// Package wcs provides the coordinate-system building blocks used by the
// region geometry package: coordinate frames, point sets, mappings between
// frames, and frame sets that tie them together.
//
// A Frame describes a coordinate system (axis count, distances, geodesic
// offsets, normalization). A Mapping is a bidirectional transform between two
// coordinate systems. A FrameSet is a connected graph of frames with a
// distinguished base and current frame, from which the mapping between any
// two member frames can be extracted.
//
// Out-of-domain coordinate values are marked with the Bad sentinel; a point
// with any bad axis value is treated as bad on every axis.
package wcs
