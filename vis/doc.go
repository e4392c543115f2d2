// Package vis renders detection results to PNG snapshots — filled room
// polygons over stroked wall segments — for debugging, bug reports, and
// golden test fixtures.
//
// This is diagnostic tooling, not a scene renderer: it consumes only the
// public DetectedSpace and WallSegment types, draws into a standalone
// image, and has no notion of cameras, layers, or interactivity. Rooms are
// filled with a distinct HSV palette (largest room first, matching
// DetectSpaces order), walls are stroked in a neutral dark gray, and world
// Y-up coordinates are flipped into image space.
package vis
