// Package physutil provides the instrumentation helpers shared by every
// physlab scenario.
//
// The helpers are independent of each other and of the physics being
// simulated; each draws through a [render.Renderer] passed in at
// construction:
//
//   - [MotionMap]: drops a marker every tf/n seconds of simulated time
//   - [MotionMapN]: drops a marker every numSteps steps of size dt
//   - [Axis]: labelled tick-mark axis that follows a tracked object
//   - [Timer]: on-screen stopwatch, clock or scientific format
//   - [Graph]: N coloured series plotted against one independent variable
//
// # Example
//
//	scene := render.NewScene("projectile")
//	ball := scenario.NewBody(...)
//	mm, _ := physutil.NewMotionMap(scene, ball, 8.163, 10, physutil.DefaultMotionMapOptions())
//	timer, _ := physutil.NewTimer(scene, 140, 150, physutil.TimerOptions{})
//	for !done {
//	    // force -> velocity -> position
//	    mm.UpdateQuantity(t, ball.Vel)
//	    timer.Update(t)
//	}
//
// # Errors
//
// Wrong-shaped or non-finite operands fail with [ErrInvalidArgument]; a
// Plot call with the wrong number of values fails with [ErrArgumentCount].
// Both are logged with a diagnostic before being returned inside an
// [*ArgumentError]. Nothing is retried and no default is substituted.
//
// # Thread Safety
//
// None of the helpers are safe for concurrent use. They are meant to be
// driven from a single simulation loop.
package physutil
