/*
Package bitmapfont is a glyph-atlas backend for the layout engine.

Glyphs come from a monospaced bitmap atlas: a single mask image holding one
fixed-size cell per glyph. Drawing blits atlas regions onto an RGBA image,
so a run costs one mask blit per rune. Bold is faked by a second blit at a
one-pixel offset, italic by blitting each cell in horizontal bands at
shifted x offsets. An adapter builds an atlas from a basicfont.Face.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

For details please refer to the LICENSE file.
*/
package bitmapfont
