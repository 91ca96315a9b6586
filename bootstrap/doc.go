// Package bootstrap runs the service lifecycle: validated config, logger
// initialization, component start in registration order, signal wait, and
// graceful shutdown with OnStop hooks.
//
//	app, err := bootstrap.NewApp(&cfg)
//	app.RegisterComponent(transcriptionComponent)
//	app.RegisterComponent(serverComponent)
//	app.OnStop(shutdownTelemetry)
//	return app.Run(ctx)
package bootstrap
