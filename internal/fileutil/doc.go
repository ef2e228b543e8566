// Package fileutil contains small filesystem helpers shared by the checker
// and the sample generator.
package fileutil
