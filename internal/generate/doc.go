// Package generate turns loaded recipes into configuration artifacts. Each
// recipe is independent, and the assembled builders are immutable, so a
// bounded pool of workers processes recipes concurrently. The first failure
// cancels the remaining work; all collected errors are reported together.
package generate
