// Package gemini implements the generation.ModelGateway interface using
// Google's Gemini API: a text model for brand analysis and structured
// verdicts, and an image model for asset generation.
package gemini
