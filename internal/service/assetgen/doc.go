// Package assetgen implements the generation-validation orchestration core:
// the self-correcting loop that generates an image, validates it against the
// brand profile, and regenerates with accumulated feedback; the per-category
// variant generators built on that loop; the consistency scorer; and the
// package orchestrator that fans categories out concurrently (or walks them
// sequentially when streaming progress) and assembles the final package.
//
// The package favors best effort over fail fast: a failed iteration is
// retried, a failed variant is skipped, a failed category becomes a note,
// and only the shared brand-analysis prerequisite can fail a whole request.
package assetgen
