// Package sheet cuts named sprites out of a sprite sheet image.
//
// A sheet is decoded once and then cropped according to a Table: an ordered
// list of named rectangles in source pixel coordinates. Every crop is
// converted to a format with an alpha channel and written as
// <root>/<name>.png. A failing entry is reported and skipped; it never
// aborts the rest of the table.
//
// Rectangles are taken as given. A rectangle that falls outside the sheet
// is clipped by the image library, and one that is entirely outside yields
// an empty crop which then fails to encode.
package sheet
