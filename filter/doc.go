// Package filter implements the per-pixel colour transforms used to
// simulate colour-vision deficiencies and to overlay channel patterns.
//
// Every transform is driven by a Mask, a small image that is tiled over
// the source by wrapping coordinates around its edges. Monochromacy and
// channel patterns multiply each source channel by the mask and keep the
// strongest response; dichromacy uses the mask as a stencil selecting
// where the missing channel replaces the pixel.
package filter
