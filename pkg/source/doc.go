// Package source describes where list content and index documents come from
// (files, fs.FS entries or HTTP URLs) and the Loader contract that fetches
// them. Implementations live under internal/source; construction helpers live
// in the root mockfill package to avoid import cycles.
package source
