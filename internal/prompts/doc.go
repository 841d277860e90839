// Package prompts builds the prompt text handed to the model gateway.
// Every builder is a pure function from (profile, variant, analysis) to
// prompt data; size-varying categories also return the pixel dimensions
// requested for the variant.
package prompts
