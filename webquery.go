// Package webquery answers natural language questions about a single web
// page using a locally hosted language model. It fetches the page, splits its
// text into overlapping chunks, embeds them into an in-memory similarity
// index, retrieves the chunks closest to the question, and asks the model to
// answer using them as context.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., ollama/, goquery/, xxhash/).
package webquery
