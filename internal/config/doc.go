// Package config loads iniregfmt settings.
//
// Settings are layered, later sources winning: built-in defaults, the
// nearest .iniregfmt.toml found by walking up from the working directory (or
// an explicit --config path), INIREGFMT_* environment variables, and finally
// command-line flags.
//
// Example .iniregfmt.toml:
//
//	jobs = 4
//	line_ending = "auto"   # auto, lf or crlf
//	encoding = ""          # input encoding when no BOM: utf-8, utf-16le, windows-1252
//
//	[ini]
//	extensions = [".ini", ".inf", ".cfg", ".desktop"]
//
//	[reg]
//	extensions = [".reg"]
package config
