package soulmate

// Version is the release version reported by the CLI and MCP server.
const Version = "0.1.0"
