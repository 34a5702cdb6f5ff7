// Package histogram provides 2-D histogram analysis: compound counts over
// paired samples and conditional normalisation along either axis.
package histogram
