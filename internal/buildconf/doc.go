// Package buildconf evaluates the build configuration of a Corona native
// Android plugin project. It resolves the ordered repository sets, the pinned
// buildscript classpath and the native SDK root once per invocation into an
// immutable Config, validates optional nativebuild.yaml project files against
// an embedded JSON Schema, and renders the equivalent build.gradle.kts.
package buildconf
