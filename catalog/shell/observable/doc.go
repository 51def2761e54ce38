// Package observable provides wrappers that instrument command and query handlers with
// metrics, tracing and logging while the handlers keep only business logic.
//
// The wrappers are applied externally at wiring time:
//
//	coreHandler := borrowbook.NewCommandHandler(catalogStore, recorder)
//
//	handler, err := observable.NewCommandWrapper[borrowbook.Command, core.BorrowingRecord](
//		coreHandler,
//		observable.WithCommandMetrics[borrowbook.Command, core.BorrowingRecord](metricsCollector),
//		observable.WithCommandTracing[borrowbook.Command, core.BorrowingRecord](tracingCollector),
//		observable.WithCommandContextualLogging[borrowbook.Command, core.BorrowingRecord](logger),
//	)
//
// Every option is optional. A wrapper without options only delegates.
//
// Commands rejected by a business rule are reported with status "rejected" and logged at
// warn level; they are outcomes of the catalog, not failures of the system.
package observable
