// Package llm suggests transaction categories using an OpenAI-compatible
// chat completion API. Both OpenAI and a local Ollama server are supported.
package llm
