// Package tfvars implements a best-effort codec for the terraform.tfvars
// variables format: parsing file content into an ordered set of tagged
// values, merging HTML-form field updates into that set, and serializing it
// back to text the terraform CLI accepts.
//
// The parser is deliberately forgiving. The file is an artifact users edit
// by hand, and the console must stay usable even when a block is left
// unterminated, so malformed input is recovered from rather than rejected.
// Callers that want the diagnostics a strict parser would produce can run
// content through Validate, which uses the real HCL toolchain.
package tfvars
