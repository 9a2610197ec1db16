// Package logger builds slog loggers and provides attribute helpers shared by
// every minikit component.
//
//	log := logger.New(logger.WithDevelopment("minikit"))
//	log.Debug("request settled",
//		logger.Component("request"),
//		logger.Method("POST"),
//		logger.URL(url),
//		logger.StatusCode(200),
//		logger.Duration(time.Since(start)),
//	)
//
// Production setups usually want JSON:
//
//	log := logger.New(logger.WithProduction("minikit"), logger.WithOutput(os.Stderr))
//
// Libraries in this module accept a *slog.Logger through an option and default
// to NewNop, so nothing is printed unless the application opts in.
//
// Attribute helpers return an empty slog.Attr for nil errors and empty
// identifiers, which slog silently drops:
//
//	log.Warn("storage write failed", logger.Error(err)) // safe when err == nil
package logger
