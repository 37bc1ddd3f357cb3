// Package reporters provides the built-in reporters and the registry that
// orders them.
//
// The default registry produces four chapters, in this order:
//
//  1. Information: who generated the report and when.
//  2. App System Metadata: application, runtime, host and locale details.
//  3. Logs: the most recent records from the log store.
//  4. Settings: the persisted key/value settings, with secrets redacted.
//
// Reporters never fail. Missing collaborators or read errors produce a
// chapter with a short placeholder text instead.
package reporters
