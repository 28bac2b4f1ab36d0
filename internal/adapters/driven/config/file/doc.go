// Package file provides a file-based implementation of the settings
// store. Settings persist as TOML under the naskah config directory.
package file
