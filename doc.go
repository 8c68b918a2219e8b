// Package colorkey turns a single solid background color into full
// transparency.
//
// Every pixel whose RGB value equals Key() (200, 191, 231) is replaced with a
// fully transparent black pixel (0, 0, 0, 0); all other pixels are copied
// bit for bit, including their original alpha. The package decodes PNG, JPEG,
// GIF, BMP, TIFF and WebP input and writes PNG, GIF, BMP or TIFF output. It
// works entirely in memory and writes nothing until the result is fully
// encoded.
package colorkey
