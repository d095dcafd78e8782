// Package logger builds *slog.Logger values for the jtac command and the
// library packages.
//
// New applies functional options to pick the output format (text or JSON),
// the minimum level, static attributes and ContextExtractor callbacks that
// pull attributes such as the active culture out of the context of each
// record. ParseFormat and ParseLevel validate the values read from the
// environment before they reach WithFormat and WithLevel.
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatJSON),
//	    logger.WithAttr(logger.Component("jtac")),
//	    logger.WithContextExtractors(culture.ContextAttr),
//	)
//	log.InfoContext(ctx, "culture loaded", logger.Culture("fr-FR"))
//
// Attribute helpers in attr.go keep key names consistent: Culture,
// TypeName, Alias, Source, Count, Component, Error and Errors. Error and
// Errors return an empty attribute for nil errors so they can be passed
// without a nil check.
//
// Library types that accept a logger default to Discard.
package logger
