// Package shared holds cross-cutting helpers that do not belong to any
// specific layer of the sales pipeline.
//
// The testutil subpackage provides a buffered slog handler and assertion
// helpers so package tests can verify structured log output without
// parsing JSON.
package shared
