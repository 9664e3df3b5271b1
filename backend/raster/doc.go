/*
Package raster is a pixel-canvas backend for the layout engine.

Text is drawn onto an in-memory RGBA image through a font.Face from
golang.org/x/image/font. Widths are pixels, y coordinates are baselines and
grow downward. Dedicated bold or italic faces are used when supplied;
without them, weight is faked by a one-pixel double draw and slant by
blitting the glyph region in horizontal bands at shifted x offsets.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package raster
