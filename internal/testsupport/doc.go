// Package testsupport holds fixtures shared by package tests: temp-dir
// configurations and empty capture files.
package testsupport
