// Package commands defines the ducat CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init         Generate the wallet keypair and store it sealed
//   - fingerprint  Print the wallet public key and fingerprint
//   - hash         Print the BLAKE2b-512 digest of a file or stdin
//   - sign         Sign a message with the wallet keypair
//   - verify       Verify a detached signature against any public key
//
// # Implementation
//
// The root command resolves the config directory and builds the dependency
// graph (keypair store, wallet service) before any subcommand runs, so
// handlers share a single app context.
package commands
