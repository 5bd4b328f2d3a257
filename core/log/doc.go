// File: doc.go
// Title: Log Package Documentation
// Description: Documents the core logging package used across the toolkit.
// Author: msto63
// Version: v0.1.0
// Created: 2026-08-12
// Modified: 2026-08-12
//
// Change History:
// - 2026-08-12 v0.1.0: Initial package documentation

/*
Package log provides the structured, leveled logger used throughout the
toolkit. Loggers carry a name and context fields; the With* methods return
clones, so components can derive sub-loggers without affecting the base.

	logger := log.GetDefault().WithName("engine").WithField("component", "parse")
	logger.Debug("grammar parsed", log.Fields{"options": 3})

Output is plain text to stderr by default and can be redirected per logger.
*/
package log
