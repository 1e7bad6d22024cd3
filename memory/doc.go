// Package memory provides minimal conversation persistence.
//
// Persistence model:
//   - A Thread groups the transcript under a conversation id, so repeated
//     runs with the same id share context.
//   - Only text messages are stored (role + text). Tool blocks are transient.
package memory
