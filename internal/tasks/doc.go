// Package tasks implements the dashboard's five periodic tasks and the
// harness that supervises them:
//
//   - [InputReader] (25 Hz): samples ignition and pedal switches
//   - [CruiseController] (20 Hz): proportional speed-hold law
//   - [PhysicsSimulator] (25 Hz): speed, drag, clamping and odometry
//   - [AverageSpeedMonitor] (5 Hz): rolling average and legal-speed alert
//   - [DisplayPresenter] (2 Hz): renders telemetry to the 2x16 display
//
// Each task exposes a single Step method performing one cycle inside the
// relevant state-group lock; [Dashboard.Run] owns the tickers and the
// sleeping, so no task ever sleeps while holding a lock.
package tasks
