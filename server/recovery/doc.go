/*
Package recovery keeps a panicking tool handler, fan-out call or background worker from taking
the whole server down. Every recovered panic is logged with its stack and counted through
Metrics.

Tool handlers and Graph fan-out calls need the outcome, so they run through Call, which turns
the panic into an error:

	err := recovery.Call("tool_send_message", recovery.Logrus(logger), metrics, func() error {
		return handler(ctx, args)
	})

Long running workers such as the health monitor use GoWorker, which restarts the callback
until isQuitting reports true:

	recovery.GoWorker("health_monitor", recovery.Logrus(logger), metrics, quitting.Load, run)
*/
package recovery
