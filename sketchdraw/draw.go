// Given a generated sketch.Drawable, implements how to
// draw it on a surface.
// This requires a driver implementing the actual paint operations,
// such as a rasterizer to output .png images or a pdf writer.
package sketchdraw
