// internal/glyph/font.go
package glyph

// font is the built-in 8x11 character set. Each rune is one column wide:
// 11 row bytes, top row first, most significant bit leftmost. Glyphs sit in
// pixels 1..5 of the column so neighbours are spaced without padding.
var font = map[rune][Rows]byte{
	' ':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'!':  {0x00, 0x00, 0x10, 0x10, 0x10, 0x10, 0x10, 0x00, 0x10, 0x00, 0x00},
	'"':  {0x00, 0x00, 0x28, 0x28, 0x28, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'#':  {0x00, 0x00, 0x28, 0x28, 0x7c, 0x28, 0x7c, 0x28, 0x28, 0x00, 0x00},
	'$':  {0x00, 0x00, 0x10, 0x3c, 0x50, 0x38, 0x14, 0x78, 0x10, 0x00, 0x00},
	'%':  {0x00, 0x00, 0x60, 0x64, 0x08, 0x10, 0x20, 0x4c, 0x0c, 0x00, 0x00},
	'&':  {0x00, 0x00, 0x20, 0x50, 0x50, 0x20, 0x54, 0x48, 0x34, 0x00, 0x00},
	'\'': {0x00, 0x00, 0x18, 0x18, 0x10, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00},
	'(':  {0x00, 0x00, 0x08, 0x10, 0x20, 0x20, 0x20, 0x10, 0x08, 0x00, 0x00},
	')':  {0x00, 0x00, 0x20, 0x10, 0x08, 0x08, 0x08, 0x10, 0x20, 0x00, 0x00},
	'*':  {0x00, 0x00, 0x10, 0x54, 0x38, 0x7c, 0x38, 0x54, 0x10, 0x00, 0x00},
	'+':  {0x00, 0x00, 0x00, 0x10, 0x10, 0x7c, 0x10, 0x10, 0x00, 0x00, 0x00},
	',':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x10, 0x20, 0x00},
	'-':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0x00, 0x00, 0x00, 0x00, 0x00},
	'.':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x18, 0x18, 0x00, 0x00},
	'/':  {0x00, 0x00, 0x00, 0x04, 0x08, 0x10, 0x20, 0x40, 0x00, 0x00, 0x00},
	'0':  {0x00, 0x00, 0x38, 0x44, 0x4c, 0x54, 0x64, 0x44, 0x38, 0x00, 0x00},
	'1':  {0x00, 0x00, 0x10, 0x30, 0x10, 0x10, 0x10, 0x10, 0x38, 0x00, 0x00},
	'2':  {0x00, 0x00, 0x38, 0x44, 0x04, 0x38, 0x40, 0x40, 0x7c, 0x00, 0x00},
	'3':  {0x00, 0x00, 0x7c, 0x04, 0x08, 0x18, 0x04, 0x44, 0x38, 0x00, 0x00},
	'4':  {0x00, 0x00, 0x08, 0x18, 0x28, 0x48, 0x7c, 0x08, 0x08, 0x00, 0x00},
	'5':  {0x00, 0x00, 0x7c, 0x40, 0x78, 0x04, 0x04, 0x44, 0x38, 0x00, 0x00},
	'6':  {0x00, 0x00, 0x1c, 0x20, 0x40, 0x78, 0x44, 0x44, 0x38, 0x00, 0x00},
	'7':  {0x00, 0x00, 0x7c, 0x04, 0x04, 0x08, 0x10, 0x20, 0x40, 0x00, 0x00},
	'8':  {0x00, 0x00, 0x38, 0x44, 0x44, 0x38, 0x44, 0x44, 0x38, 0x00, 0x00},
	'9':  {0x00, 0x00, 0x38, 0x44, 0x44, 0x3c, 0x04, 0x08, 0x70, 0x00, 0x00},
	':':  {0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00},
	';':  {0x00, 0x00, 0x00, 0x00, 0x10, 0x00, 0x10, 0x10, 0x20, 0x00, 0x00},
	'<':  {0x00, 0x00, 0x04, 0x08, 0x10, 0x20, 0x10, 0x08, 0x04, 0x00, 0x00},
	'=':  {0x00, 0x00, 0x00, 0x00, 0x7c, 0x00, 0x7c, 0x00, 0x00, 0x00, 0x00},
	'>':  {0x00, 0x00, 0x20, 0x10, 0x08, 0x04, 0x08, 0x10, 0x20, 0x00, 0x00},
	'?':  {0x00, 0x00, 0x38, 0x44, 0x04, 0x18, 0x10, 0x00, 0x10, 0x00, 0x00},
	'@':  {0x00, 0x00, 0x38, 0x44, 0x54, 0x5c, 0x58, 0x40, 0x3c, 0x00, 0x00},
	'A':  {0x00, 0x00, 0x10, 0x28, 0x44, 0x44, 0x7c, 0x44, 0x44, 0x00, 0x00},
	'B':  {0x00, 0x00, 0x78, 0x44, 0x44, 0x78, 0x44, 0x44, 0x78, 0x00, 0x00},
	'C':  {0x00, 0x00, 0x38, 0x44, 0x40, 0x40, 0x40, 0x44, 0x38, 0x00, 0x00},
	'D':  {0x00, 0x00, 0x78, 0x44, 0x44, 0x44, 0x44, 0x44, 0x78, 0x00, 0x00},
	'E':  {0x00, 0x00, 0x7c, 0x40, 0x40, 0x78, 0x40, 0x40, 0x7c, 0x00, 0x00},
	'F':  {0x00, 0x00, 0x7c, 0x40, 0x40, 0x78, 0x40, 0x40, 0x40, 0x00, 0x00},
	'G':  {0x00, 0x00, 0x3c, 0x44, 0x40, 0x40, 0x4c, 0x44, 0x3c, 0x00, 0x00},
	'H':  {0x00, 0x00, 0x44, 0x44, 0x44, 0x7c, 0x44, 0x44, 0x44, 0x00, 0x00},
	'I':  {0x00, 0x00, 0x38, 0x10, 0x10, 0x10, 0x10, 0x10, 0x38, 0x00, 0x00},
	'J':  {0x00, 0x00, 0x1c, 0x08, 0x08, 0x08, 0x08, 0x48, 0x30, 0x00, 0x00},
	'K':  {0x00, 0x00, 0x44, 0x48, 0x50, 0x60, 0x50, 0x48, 0x44, 0x00, 0x00},
	'L':  {0x00, 0x00, 0x40, 0x40, 0x40, 0x40, 0x40, 0x40, 0x7c, 0x00, 0x00},
	'M':  {0x00, 0x00, 0x44, 0x6c, 0x54, 0x54, 0x54, 0x44, 0x44, 0x00, 0x00},
	'N':  {0x00, 0x00, 0x44, 0x44, 0x64, 0x54, 0x4c, 0x44, 0x44, 0x00, 0x00},
	'O':  {0x00, 0x00, 0x38, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'P':  {0x00, 0x00, 0x78, 0x44, 0x44, 0x78, 0x40, 0x40, 0x40, 0x00, 0x00},
	'Q':  {0x00, 0x00, 0x38, 0x44, 0x44, 0x44, 0x54, 0x48, 0x34, 0x00, 0x00},
	'R':  {0x00, 0x00, 0x78, 0x44, 0x44, 0x78, 0x50, 0x48, 0x44, 0x00, 0x00},
	'S':  {0x00, 0x00, 0x38, 0x44, 0x40, 0x38, 0x04, 0x44, 0x38, 0x00, 0x00},
	'T':  {0x00, 0x00, 0x7c, 0x54, 0x10, 0x10, 0x10, 0x10, 0x10, 0x00, 0x00},
	'U':  {0x00, 0x00, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'V':  {0x00, 0x00, 0x44, 0x44, 0x44, 0x44, 0x44, 0x28, 0x10, 0x00, 0x00},
	'W':  {0x00, 0x00, 0x44, 0x44, 0x44, 0x54, 0x54, 0x54, 0x28, 0x00, 0x00},
	'X':  {0x00, 0x00, 0x44, 0x44, 0x28, 0x10, 0x28, 0x44, 0x44, 0x00, 0x00},
	'Y':  {0x00, 0x00, 0x44, 0x44, 0x28, 0x10, 0x10, 0x10, 0x10, 0x00, 0x00},
	'Z':  {0x00, 0x00, 0x7c, 0x04, 0x08, 0x38, 0x20, 0x40, 0x7c, 0x00, 0x00},
	'[':  {0x00, 0x00, 0x3c, 0x20, 0x20, 0x20, 0x20, 0x20, 0x3c, 0x00, 0x00},
	'\\': {0x00, 0x00, 0x00, 0x40, 0x20, 0x10, 0x08, 0x04, 0x00, 0x00, 0x00},
	']':  {0x00, 0x00, 0x3c, 0x04, 0x04, 0x04, 0x04, 0x04, 0x3c, 0x00, 0x00},
	'^':  {0x00, 0x00, 0x10, 0x28, 0x44, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'_':  {0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7c, 0x00, 0x00},
	'`':  {0x00, 0x00, 0x30, 0x30, 0x10, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00},
	'a':  {0x00, 0x00, 0x00, 0x00, 0x30, 0x08, 0x38, 0x48, 0x3c, 0x00, 0x00},
	'b':  {0x00, 0x00, 0x40, 0x40, 0x58, 0x64, 0x44, 0x64, 0x58, 0x00, 0x00},
	'c':  {0x00, 0x00, 0x00, 0x00, 0x38, 0x44, 0x40, 0x44, 0x38, 0x00, 0x00},
	'd':  {0x00, 0x00, 0x04, 0x04, 0x34, 0x4c, 0x44, 0x4c, 0x34, 0x00, 0x00},
	'e':  {0x00, 0x00, 0x00, 0x00, 0x38, 0x44, 0x7c, 0x40, 0x38, 0x00, 0x00},
	'f':  {0x00, 0x00, 0x08, 0x14, 0x10, 0x38, 0x10, 0x10, 0x10, 0x00, 0x00},
	'g':  {0x00, 0x00, 0x00, 0x00, 0x38, 0x4c, 0x4c, 0x34, 0x04, 0x38, 0x00},
	'h':  {0x00, 0x00, 0x40, 0x40, 0x58, 0x64, 0x44, 0x44, 0x44, 0x00, 0x00},
	'i':  {0x00, 0x00, 0x10, 0x00, 0x30, 0x10, 0x10, 0x10, 0x38, 0x00, 0x00},
	'j':  {0x00, 0x00, 0x08, 0x00, 0x08, 0x08, 0x08, 0x48, 0x30, 0x00, 0x00},
	'k':  {0x00, 0x00, 0x40, 0x40, 0x48, 0x50, 0x60, 0x50, 0x48, 0x00, 0x00},
	'l':  {0x00, 0x00, 0x30, 0x10, 0x10, 0x10, 0x10, 0x10, 0x38, 0x00, 0x00},
	'm':  {0x00, 0x00, 0x00, 0x00, 0x68, 0x54, 0x54, 0x54, 0x54, 0x00, 0x00},
	'n':  {0x00, 0x00, 0x00, 0x00, 0x58, 0x64, 0x44, 0x44, 0x44, 0x00, 0x00},
	'o':  {0x00, 0x00, 0x00, 0x00, 0x38, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'p':  {0x00, 0x00, 0x00, 0x00, 0x58, 0x64, 0x64, 0x58, 0x40, 0x40, 0x00},
	'q':  {0x00, 0x00, 0x00, 0x00, 0x34, 0x4c, 0x4c, 0x34, 0x04, 0x04, 0x00},
	'r':  {0x00, 0x00, 0x00, 0x00, 0x58, 0x64, 0x40, 0x40, 0x40, 0x00, 0x00},
	's':  {0x00, 0x00, 0x00, 0x00, 0x3c, 0x40, 0x38, 0x04, 0x78, 0x00, 0x00},
	't':  {0x00, 0x00, 0x10, 0x10, 0x7c, 0x10, 0x10, 0x14, 0x08, 0x00, 0x00},
	'u':  {0x00, 0x00, 0x00, 0x00, 0x44, 0x44, 0x44, 0x4c, 0x34, 0x00, 0x00},
	'v':  {0x00, 0x00, 0x00, 0x00, 0x44, 0x44, 0x44, 0x28, 0x10, 0x00, 0x00},
	'w':  {0x00, 0x00, 0x00, 0x00, 0x44, 0x44, 0x54, 0x54, 0x28, 0x00, 0x00},
	'x':  {0x00, 0x00, 0x00, 0x00, 0x44, 0x28, 0x10, 0x28, 0x44, 0x00, 0x00},
	'y':  {0x00, 0x00, 0x00, 0x00, 0x44, 0x44, 0x3c, 0x04, 0x44, 0x38, 0x00},
	'z':  {0x00, 0x00, 0x00, 0x00, 0x7c, 0x08, 0x10, 0x20, 0x7c, 0x00, 0x00},
	'{':  {0x00, 0x00, 0x08, 0x10, 0x10, 0x20, 0x10, 0x10, 0x08, 0x00, 0x00},
	'|':  {0x00, 0x00, 0x10, 0x10, 0x10, 0x00, 0x10, 0x10, 0x10, 0x00, 0x00},
	'}':  {0x00, 0x00, 0x20, 0x10, 0x10, 0x08, 0x10, 0x10, 0x20, 0x00, 0x00},
	'~':  {0x00, 0x00, 0x20, 0x54, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'°':  {0x00, 0x30, 0x48, 0x48, 0x30, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00},
	'Ä':  {0x28, 0x00, 0x10, 0x28, 0x44, 0x44, 0x7c, 0x44, 0x44, 0x00, 0x00},
	'Ö':  {0x28, 0x00, 0x38, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'Ü':  {0x28, 0x00, 0x44, 0x44, 0x44, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'ß':  {0x00, 0x00, 0x30, 0x48, 0x50, 0x48, 0x44, 0x54, 0x48, 0x40, 0x00},
	'ä':  {0x00, 0x00, 0x28, 0x00, 0x30, 0x08, 0x38, 0x48, 0x3c, 0x00, 0x00},
	'ö':  {0x00, 0x00, 0x28, 0x00, 0x38, 0x44, 0x44, 0x44, 0x38, 0x00, 0x00},
	'ü':  {0x00, 0x00, 0x28, 0x00, 0x44, 0x44, 0x44, 0x4c, 0x34, 0x00, 0x00},
	'€':  {0x00, 0x00, 0x1c, 0x20, 0x78, 0x20, 0x78, 0x20, 0x1c, 0x00, 0x00},
}
